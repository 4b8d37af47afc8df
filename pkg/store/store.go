// Package store persists sweep reports.
//
// Reports are small documents (one row per n with its breakdown), so the
// store is a thin document interface with two backends:
//
//   - MongoStore: MongoDB, for server deployments that keep sweep history
//   - MemoryStore: in-process map, for development and tests
//
// The CLI only writes reports when asked to (table --store); everything
// else in cliquechain works without a store.
package store

import (
	"context"

	"github.com/matzehuels/cliquechain/pkg/errors"
	"github.com/matzehuels/cliquechain/pkg/series"
)

// Store saves and retrieves sweep reports.
type Store interface {
	// Save persists a report. Saving an existing ID overwrites it.
	Save(ctx context.Context, report *series.Report) error

	// Get returns the report with the given ID, or REPORT_NOT_FOUND.
	Get(ctx context.Context, id string) (*series.Report, error)

	// Latest returns the most recently generated report covering max,
	// or REPORT_NOT_FOUND when none exists.
	Latest(ctx context.Context, max int) (*series.Report, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the standard missing-report error.
func notFound(what string) error {
	return errors.New(errors.ErrCodeReportNotFound, "no report for %s", what)
}
