package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ps-vitor/apartment-finder/internal/api/models"
	"github.com/ps-vitor/apartment-finder/internal/domain"
	"github.com/ps-vitor/apartment-finder/internal/services"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

type APIHandler struct {
	listingService *services.ListingService
	log            *logger.Logger
	cacheControl   string
}

// NewAPIHandler builds the JSON handlers; maxAge is the freshness in
// seconds advertised for a successful /api/apartments response.
func NewAPIHandler(listingService *services.ListingService, log *logger.Logger, maxAge int) *APIHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &APIHandler{
		listingService: listingService,
		log:            log,
		cacheControl:   fmt.Sprintf("max-age=%d", maxAge),
	}
}

func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/apartments", h.handleApartments).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", h.handleHealthz).Methods(http.MethodGet, http.MethodHead)
}

func (h *APIHandler) handleApartments(w http.ResponseWriter, r *http.Request) {
	res, err := h.listingService.Fetch(r.Context())
	if err != nil {
		h.log.Errorf("load listings: %v", err)
		internalError(w)
		return
	}

	switch res.Status {
	case domain.LoadMissing:
		writeError(w, http.StatusNotFound, models.MsgListingsNotFound)
	case domain.LoadMalformed:
		writeError(w, http.StatusInternalServerError, models.MsgListingsInvalid)
	default:
		var buf bytes.Buffer
		if err := res.Document.Encode(&buf); err != nil {
			h.log.Errorf("encode listings: %v", err)
			internalError(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", h.cacheControl)
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// handleHealthz always answers ok; it does not look at the data file.
func (h *APIHandler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(models.ErrorResponse{Error: msg}.Bytes())
}

// internalError is the generic answer for failures that have no dedicated
// error body.
func internalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
