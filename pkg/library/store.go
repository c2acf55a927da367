package library

import (
	"context"

	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
)

// StoreInterface persists the whole record collection. Load returns records in
// insertion order and Save replaces the stored collection with the given one.
type StoreInterface interface {
	Load(ctx context.Context) ([]analysis.TextRecord, error)
	Save(ctx context.Context, records []analysis.TextRecord) error
}
