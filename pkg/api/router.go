package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rishadfb/email-creation/pkg/logger"
)

// Deps holds the dependencies required to build the API router.
type Deps struct {
	Creator EmailCreator
	Catalog TemplateCatalog

	// Logger is optional; a noop logger is used when nil.
	Logger *slog.Logger
}

// NewRouter builds the /api sub-router: email preview and batch creation
// plus read access to the template catalog. All responses use the JSON
// envelope from this package.
func NewRouter(deps Deps) (chi.Router, error) {
	if deps.Creator == nil {
		return nil, ErrCreatorNotSet
	}
	if deps.Catalog == nil {
		return nil, ErrCatalogNotSet
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(noopHandler{})
	}

	h := &handlers{creator: deps.Creator, catalog: deps.Catalog, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrMethodNotAllowed)
	})

	r.Route("/emails", func(r chi.Router) {
		r.Post("/preview", h.previewEmail)
		r.Post("/batch", h.createBatch)
	})
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.listTemplates)
		r.Get("/{templateID}", h.getTemplate)
	})

	return r, nil
}

// requestLogger emits one structured record per request after it
// completes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
				logger.RequestID(middleware.GetReqID(r.Context())),
			)
		})
	}
}
