package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cliquechain/pkg/clique"
	"github.com/matzehuels/cliquechain/pkg/errors"
	"github.com/matzehuels/cliquechain/pkg/render"
	"github.com/matzehuels/cliquechain/pkg/series"
)

// configurationsResponse is the payload for /v1/configurations/{n}.
type configurationsResponse struct {
	N              int                   `json:"n"`
	Count          int                   `json:"count"`
	Cached         bool                  `json:"cached"`
	Breakdown      []series.SizeCount    `json:"breakdown"`
	Configurations []configurationDetail `json:"configurations"`
}

// configurationDetail pairs a configuration with its derived display data.
type configurationDetail struct {
	Cliques    clique.Configuration `json:"cliques"`
	Brackets   string               `json:"brackets"`
	EndingSize int                  `json:"ending_size"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfigurations(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseN(chi.URLParam(r, "n"))
	if err != nil {
		writeError(w, err)
		return
	}

	configs, cached, err := s.runner.Enumerate(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := configurationsResponse{
		N:              n,
		Count:          len(configs),
		Cached:         cached,
		Configurations: make([]configurationDetail, 0, len(configs)),
	}
	breakdown := make(map[int]int)
	for _, c := range configs {
		size := clique.EndingCliqueSize(c, n)
		breakdown[size]++
		resp.Configurations = append(resp.Configurations, configurationDetail{
			Cliques:    c,
			Brackets:   render.Bracket(c, render.BracketOptions{}),
			EndingSize: size,
		})
	}
	for size := 1; size <= n; size++ {
		if count := breakdown[size]; count > 0 {
			resp.Breakdown = append(resp.Breakdown, series.SizeCount{Size: size, Count: count})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	max, err := s.parseN(r.URL.Query().Get("max"))
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := s.runner.Sweep(r.Context(), max)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// parseN parses and bounds-checks an n parameter.
func (s *Server) parseN(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "n must be an integer, got %q", raw)
	}
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "n must be at least 1, got %d", n)
	}
	if n > s.maxN {
		return 0, errors.New(errors.ErrCodeInvalidRange, "n must be at most %d, got %d", s.maxN, n)
	}
	return n, nil
}
