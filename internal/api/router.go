package api

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/ps-vitor/apartment-finder/internal/api/handlers"
	"github.com/ps-vitor/apartment-finder/internal/api/middleware"
	"github.com/ps-vitor/apartment-finder/internal/api/render"
	"github.com/ps-vitor/apartment-finder/internal/services"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

const StaticPrefix = "/static/"

type RouterConfig struct {
	StaticDir      string
	StaticMaxAge   int
	ListingsMaxAge int
}

// NewRouter wires every route. The middlewares wrap the router itself so
// that they also see 404 and 405 answers produced by mux.
func NewRouter(cfg RouterConfig, listings *services.ListingService, renderer *render.Renderer, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	handlers.NewAPIHandler(listings, log, cfg.ListingsMaxAge).RegisterRoutes(r)
	handlers.NewPageHandler(renderer, log).RegisterRoutes(r)

	static := http.StripPrefix(StaticPrefix, http.FileServer(fileOnlyFS{http.Dir(cfg.StaticDir)}))
	r.PathPrefix(StaticPrefix).Handler(static).Methods(http.MethodGet, http.MethodHead)

	return middleware.Chain(r,
		middleware.Logging(log),
		middleware.Recover(log),
		middleware.StaticCache(StaticPrefix, cfg.StaticMaxAge),
	)
}

// fileOnlyFS hides directories so the file server never lists them.
type fileOnlyFS struct {
	fs http.FileSystem
}

func (f fileOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
