package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// StaticCache marks every response for a path under prefix as publicly
// cacheable for maxAge seconds, replacing whatever the handler set.
// Other responses keep the headers their handler chose.
func StaticCache(prefix string, maxAge int) mux.MiddlewareFunc {
	value := fmt.Sprintf("public, max-age=%d", maxAge)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
			rw := wrap(w)
			rw.addHeaderHook(func(h http.Header) {
				h.Set("Cache-Control", value)
			})
			next.ServeHTTP(rw, r)
			if !rw.wroteHeader {
				// handler wrote nothing, still send the directive
				rw.WriteHeader(http.StatusOK)
			}
		})
	}
}
