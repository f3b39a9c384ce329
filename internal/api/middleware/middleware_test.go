package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStaticCacheAppliesUnderPrefix(t *testing.T) {
	h := StaticCache("/static/", 31536000)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte("body{}"))
	}))

	rec := serve(h, http.MethodGet, "/static/css/site.css")
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=31536000" {
		t.Errorf("Cache-Control = %q", got)
	}
	if rec.Body.String() != "body{}" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestStaticCacheAppliesToErrorsAndEmptyResponses(t *testing.T) {
	notFound := StaticCache("/static/", 60)(http.NotFoundHandler())
	if got := serve(notFound, http.MethodGet, "/static/missing.js").Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Errorf("404 Cache-Control = %q", got)
	}

	empty := StaticCache("/static/", 60)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	if got := serve(empty, http.MethodGet, "/static/x").Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Errorf("empty response Cache-Control = %q", got)
	}
}

func TestStaticCacheLeavesOtherPathsAlone(t *testing.T) {
	h := StaticCache("/static/", 31536000)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=300")
		w.Write([]byte("[]"))
	}))

	for _, target := range []string{"/api/apartments", "/staticfile", "/static"} {
		if got := serve(h, http.MethodGet, target).Header().Get("Cache-Control"); got != "max-age=300" {
			t.Errorf("%s: Cache-Control = %q, want handler value", target, got)
		}
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "", false)

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), Logging(log))

	serve(h, http.MethodGet, "/brew")

	if !strings.Contains(buf.String(), "GET /brew 418") {
		t.Errorf("log line = %q", buf.String())
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "", false)

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	}), Logging(log), Recover(log), StaticCache("/static/", 10))

	rec := serve(h, http.MethodGet, "/static/boom")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=10" {
		t.Errorf("Cache-Control = %q", got)
	}
	out := buf.String()
	if !strings.Contains(out, "template exploded") || !strings.Contains(out, "GET /static/boom 500") {
		t.Errorf("log output = %q", out)
	}
}
