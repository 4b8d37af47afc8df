package series

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cliquechain/pkg/cache"
	"github.com/matzehuels/cliquechain/pkg/clique"
	"github.com/matzehuels/cliquechain/pkg/errors"
)

// reportTTL bounds how long sweep reports stay cached. Configuration sets
// themselves never expire: Generate is a pure function of n.
const reportTTL = 30 * 24 * time.Hour

// Runner executes enumerations with caching. It is stateless apart from the
// cache and logger, so one Runner can serve concurrent requests with
// different parameters.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer falls back to the default keyer, a nil cache disables caching
// and a nil logger falls back to the package default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Close releases the cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Enumerate returns every valid configuration for n, consulting the cache
// first. The second return value reports whether the result came from
// cache.
func (r *Runner) Enumerate(ctx context.Context, n int) ([]clique.Configuration, bool, error) {
	if n < 1 {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "n must be at least 1, got %d", n)
	}

	key := r.Keyer.ConfigsKey(n)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var configs []clique.Configuration
		if err := json.Unmarshal(data, &configs); err == nil {
			r.Logger.Debug("configurations from cache", "n", n, "count", len(configs))
			return configs, true, nil
		}
		// Undecodable entry, drop it and regenerate.
		_ = r.Cache.Delete(ctx, key)
	}

	start := time.Now()
	configs, err := clique.Generate(n)
	if err != nil {
		return nil, false, fmt.Errorf("generate n=%d: %w", n, err)
	}
	r.Logger.Debug("generated configurations",
		"n", n,
		"count", len(configs),
		"duration", time.Since(start).Round(time.Millisecond))

	if data, err := json.Marshal(configs); err == nil {
		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			r.Logger.Warn("cache write failed", "n", n, "err", err)
		}
	}
	return configs, false, nil
}

// Sweep enumerates n = 1..max, builds the per-n breakdowns and checks the
// recurrence a(n+1) = 3·a(n) − 1 for every step. Complete reports are
// cached; a cached report is returned as-is.
func (r *Runner) Sweep(ctx context.Context, max int) (*Report, error) {
	if max < 1 {
		return nil, errors.New(errors.ErrCodeInvalidRange, "max must be at least 1, got %d", max)
	}

	reportKey := r.Keyer.ReportKey(max)
	if data, hit, err := r.Cache.Get(ctx, reportKey); err == nil && hit {
		var report Report
		if err := json.Unmarshal(data, &report); err == nil {
			r.Logger.Debug("report from cache", "max", max)
			return &report, nil
		}
		_ = r.Cache.Delete(ctx, reportKey)
	}

	report := &Report{
		ID:          uuid.NewString(),
		Max:         max,
		Rows:        make([]Row, 0, max),
		GeneratedAt: time.Now().UTC(),
	}

	prev := 0
	for n := 1; n <= max; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		configs, _, err := r.Enumerate(ctx, n)
		if err != nil {
			return nil, err
		}

		row := Row{
			N:         n,
			Count:     len(configs),
			Breakdown: breakdownRow(clique.Breakdown(configs, n)),
		}
		if n == 1 {
			row.RecurrenceOK = true
		} else {
			row.Expected = 3*prev - 1
			row.RecurrenceOK = row.Count == row.Expected
		}
		if !row.RecurrenceOK {
			r.Logger.Warn("recurrence mismatch", "n", n, "count", row.Count, "expected", row.Expected)
		}

		report.Rows = append(report.Rows, row)
		prev = row.Count
	}

	if data, err := json.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, reportKey, data, reportTTL); err != nil {
			r.Logger.Warn("report cache write failed", "max", max, "err", err)
		}
	}
	return report, nil
}
