package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/closetiq/outfitsearch/internal/domain"
	"github.com/closetiq/outfitsearch/internal/domain/match"
	healthuc "github.com/closetiq/outfitsearch/internal/usecase/health"
)

// searcher runs outfit searches (implemented by usecase/search.Service).
type searcher interface {
	Search(ctx context.Context, rawQuery string) ([]match.Match, error)
}

// healthChecker aggregates component health (implemented by usecase/health.Service).
type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server exposes the search API over HTTP.
type Server struct {
	search searcher
	health healthChecker
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search searcher, health healthChecker, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/smart-search", s.SmartSearch)
	r.Get("/healthz", s.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// outfitResponse is the wire shape of one ranked outfit.
type outfitResponse struct {
	Occasion string   `json:"occasion"`
	Style    string   `json:"style"`
	Items    []string `json:"items"`
	Image    string   `json:"image"`
	Score    float64  `json:"score"`
}

// ErrorResponse is the wire shape of an API error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SmartSearch handles GET /smart-search?query=...&occasion=...
// The optional occasion hint is prepended to the query when the query does
// not already mention it, mirroring what the mobile client intends to send.
func (s *Server) SmartSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	occasion := r.URL.Query().Get("occasion")

	if occasion != "" && !strings.Contains(strings.ToLower(q), strings.ToLower(occasion)) {
		q = strings.TrimSpace(occasion + " " + q)
	}

	results, err := s.search.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := make([]outfitResponse, len(results))
	for i, m := range results {
		o := m.Outfit()
		resp[i] = outfitResponse{
			Occasion: o.Occasion(),
			Style:    o.Style(),
			Items:    o.Items(),
			Image:    o.Image(),
			Score:    m.Score(),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "invalid_query", "Query must not be empty")
	case errors.Is(err, domain.ErrEmbeddingUnavailable):
		writeError(w, http.StatusBadGateway, "embedding_unavailable", "Embedding provider failed, retry later")
	case errors.Is(err, domain.ErrCatalogUnavailable):
		writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Catalog storage failed, retry later")
	default:
		s.logger.Error("unhandled search error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
