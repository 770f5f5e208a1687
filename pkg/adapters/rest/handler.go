package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/canopyhq/canopy/pkg/content"
	"github.com/go-chi/chi/v5"
)

// Source resolves flattened node records by path. The file source and the
// redis store both satisfy it.
type Source interface {
	Record(ctx context.Context, path string) (*content.Record, error)
}

// NewHandler serves a record source over HTTP:
//
//	GET /nodes/{path...} -> content.Record as JSON, 404 if unknown.
func NewHandler(src Source, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/nodes/*", func(w http.ResponseWriter, req *http.Request) {
		path := "/" + chi.URLParam(req, "*")

		rec, err := src.Record(req.Context(), path)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "node not found", http.StatusNotFound)
				return
			}
			logger.Error("failed to resolve node", "path", path, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rec); err != nil {
			logger.Error("failed to encode node", "path", path, "err", err)
		}
	})
	return r
}
