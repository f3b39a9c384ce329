package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ps-vitor/apartment-finder/internal/api/render"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

// PageData is what the page templates can refer to.
type PageData struct {
	ListingsURL string
	Debug       bool
}

type PageHandler struct {
	renderer *render.Renderer
	log      *logger.Logger
	data     PageData
}

func NewPageHandler(renderer *render.Renderer, log *logger.Logger) *PageHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PageHandler{
		renderer: renderer,
		log:      log,
		data: PageData{
			ListingsURL: "/api/apartments",
			Debug:       log.DebugEnabled(),
		},
	}
}

func (h *PageHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.page("index.html")).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/test", h.page("test.html")).Methods(http.MethodGet, http.MethodHead)
}

func (h *PageHandler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := h.renderer.Render(&buf, name, h.data); err != nil {
			h.log.Errorf("%v", err)
			internalError(w)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
