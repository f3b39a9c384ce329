// Package middleware holds the HTTP wrappers applied around the router.
package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, mws ...mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// responseWriter records the status and runs onHeader right before the
// header is sent, which is the last moment headers can still change.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	onHeader    func(http.Header)
}

func wrap(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = code
	if w.onHeader != nil {
		w.onHeader(w.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *responseWriter) addHeaderHook(fn func(http.Header)) {
	prev := w.onHeader
	w.onHeader = func(h http.Header) {
		if prev != nil {
			prev(h)
		}
		fn(h)
	}
}
