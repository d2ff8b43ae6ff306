// Package store persists analysis reports so the HTTP API can hand out
// stable report ids. MemoryStore backs single-process deployments and
// tests; MongoStore backs deployments that need reports to survive
// restarts.
package store

import (
	"context"
	"time"

	"github.com/you-dian-tian/graphwalk/pkg/analyze"
	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
)

// SavedReport wraps an analysis report with its storage identity.
type SavedReport struct {
	ID        string         `json:"id" bson:"_id"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	Report    analyze.Report `json:"report" bson:"report"`
}

// Store is the persistence interface for saved reports.
type Store interface {
	// Put saves a report. Saving an id twice overwrites the first.
	Put(ctx context.Context, rep SavedReport) error

	// Get fetches a report by id. A missing id yields an error with
	// code NOT_FOUND.
	Get(ctx context.Context, id string) (SavedReport, error)

	// Close releases any resources held by the backend.
	Close(ctx context.Context) error
}

// errNotFound builds the canonical missing-report error.
func errNotFound(id string) error {
	return apperrors.New(apperrors.ErrCodeNotFound, "report %s not found", id)
}
