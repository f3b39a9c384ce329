package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

// Logging writes one line per request: method, path, status and duration.
func Logging(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrap(w)
			next.ServeHTTP(rw, r)
			log.Infof("%s %s %d %dms", r.Method, r.URL.Path, rw.Status(), time.Since(start).Milliseconds())
		})
	}
}

// Recover turns a handler panic into a plain 500 instead of a dropped
// connection.
func Recover(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrap(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				if !rw.wroteHeader {
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
