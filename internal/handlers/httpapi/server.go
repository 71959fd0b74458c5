// Package httpapi exposes read and player endpoints over HTTP with chi, plus
// health and prometheus metrics.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talents"
)

// Config holds dependencies for the HTTP handler
type Config struct {
	TalentService talents.Service
	Gatherer      prometheus.Gatherer
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.TalentService == nil {
		vb.RequiredField("TalentService")
	}
	if c.Gatherer == nil {
		vb.RequiredField("Gatherer")
	}
	return vb.Build()
}

type server struct {
	talentService talents.Service
	logger        *slog.Logger
}

// NewHandler builds the router
func NewHandler(cfg *Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &server{
		talentService: cfg.TalentService,
		logger:        cfg.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/progression", s.getProgression)
		r.Get("/trees", s.listTrees)
		r.Get("/trees/{tree}", s.getTree)
		r.Post("/trees/{tree}/talents/{talent}/allocate", s.allocate)
		r.Post("/trees/{tree}/talents/{talent}/reclaim", s.reclaim)
	})

	return r, nil
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	status, err := s.talentService.GetStatus(r.Context(), &talents.GetStatusInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	code := http.StatusOK
	if !status.Loaded {
		code = http.StatusServiceUnavailable
	}
	s.writeJSON(w, code, statusFromOutput(status))
}

func (s *server) listTrees(w http.ResponseWriter, r *http.Request) {
	output, err := s.talentService.ListTrees(r.Context(), &talents.ListTreesInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	trees := make([]treeResponse, 0, len(output.Trees))
	for _, tree := range output.Trees {
		trees = append(trees, treeFromEntity(tree))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"trees": trees})
}

func (s *server) getTree(w http.ResponseWriter, r *http.Request) {
	output, err := s.talentService.GetTree(r.Context(), &talents.GetTreeInput{
		Name: chi.URLParam(r, "tree"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, getTreeResponse{
		Tree: treeFromEntity(output.Tree),
		Rows: rowsFromEntities(output.RowStates),
	})
}

func (s *server) getProgression(w http.ResponseWriter, r *http.Request) {
	output, err := s.talentService.GetProgression(r.Context(), &talents.GetProgressionInput{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, progressionFromEntity(output.Progression))
}

func (s *server) allocate(w http.ResponseWriter, r *http.Request) {
	output, err := s.talentService.Allocate(r.Context(), &talents.AllocateInput{
		Tree:     chi.URLParam(r, "tree"),
		TalentID: chi.URLParam(r, "talent"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, commandResponse{
		Outcome:     string(output.Outcome),
		Allowed:     output.Allowed,
		Talent:      talentFromEntity(output.Talent),
		PointsSpent: output.PointsSpent,
		Requirement: output.Requirement,
		Rows:        rowsFromEntities(output.RowStates),
		Progression: progressionFromEntity(output.Progression),
	})
}

func (s *server) reclaim(w http.ResponseWriter, r *http.Request) {
	output, err := s.talentService.Reclaim(r.Context(), &talents.ReclaimInput{
		Tree:     chi.URLParam(r, "tree"),
		TalentID: chi.URLParam(r, "talent"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, commandResponse{
		Outcome:     string(output.Outcome),
		Allowed:     output.Allowed,
		Talent:      talentFromEntity(output.Talent),
		PointsSpent: output.PointsSpent,
		Rows:        rowsFromEntities(output.RowStates),
		Progression: progressionFromEntity(output.Progression),
	})
}

func (s *server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"error", err)
	}

	s.writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}
