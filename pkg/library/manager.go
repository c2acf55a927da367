package library

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"github.com/ethanbaker/stringanalyzer/pkg/errs"
	"github.com/ethanbaker/stringanalyzer/pkg/filter"
	"github.com/ethanbaker/stringanalyzer/pkg/nlquery"
)

// Manager coordinates analysis, filtering and the record store. Creates and
// deletes are whole-collection read-modify-write cycles, so they hold the write
// lock for the full cycle; reads share the read lock.
type Manager struct {
	store StoreInterface
	now   func() time.Time
	mutex sync.RWMutex
}

// ManagerOptions contains configuration options for the Manager
type ManagerOptions struct {
	Store StoreInterface   // Required record store
	Clock func() time.Time // Optional clock for created_at, defaults to time.Now
}

// NewManager creates a new manager around a store
func NewManager(opts *ManagerOptions) (*Manager, error) {
	if opts == nil || opts.Store == nil {
		return nil, errors.New("a valid store must be provided")
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Manager{
		store: opts.Store,
		now:   clock,
	}, nil
}

// Create analyzes and stores a new value. A value whose hash is already stored
// fails with a duplicate record error.
func (m *Manager) Create(ctx context.Context, value string) (*analysis.TextRecord, error) {
	record := analysis.NewRecord(value, m.now())

	m.mutex.Lock()
	defer m.mutex.Unlock()

	records, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range records {
		if existing.ID == record.ID {
			return nil, errs.DuplicateRecord(record.ID)
		}
	}

	records = append(records, record)
	if err := m.store.Save(ctx, records); err != nil {
		return nil, errors.Wrap(err, "failed to save strings")
	}

	return &record, nil
}

// Get returns the record whose value matches exactly
func (m *Manager) Get(ctx context.Context, value string) (*analysis.TextRecord, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	records, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Value == value {
			return &records[i], nil
		}
	}

	return nil, errs.NotFound(value)
}

// Delete removes the record whose value matches exactly
func (m *Manager) Delete(ctx context.Context, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	records, err := m.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range records {
		if records[i].Value == value {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errs.NotFound(value)
	}

	remaining := make([]analysis.TextRecord, 0, len(records)-1)
	remaining = append(remaining, records[:idx]...)
	remaining = append(remaining, records[idx+1:]...)

	if err := m.store.Save(ctx, remaining); err != nil {
		return errors.Wrap(err, "failed to save strings")
	}

	return nil
}

// Count returns the number of stored records. It doubles as a store health check.
func (m *Manager) Count(ctx context.Context) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	records, err := m.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// List validates raw filter parameters and returns the matching records. Malformed
// parameters fail before the store is read.
func (m *Manager) List(ctx context.Context, raw map[string]any) (*filter.Result, error) {
	if _, err := filter.Parse(raw); err != nil {
		return nil, err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	records, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	result, err := filter.ApplyRaw(records, raw)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Filter applies an already typed request to the stored records
func (m *Manager) Filter(ctx context.Context, req filter.Request) (*filter.Result, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	records, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	result := filter.Apply(records, req)
	return &result, nil
}

// Query translates a natural language query and applies the derived filters.
// The query is lowercased for translation but echoed as given.
func (m *Manager) Query(ctx context.Context, query string) (*QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errs.Validation("query", "Missing 'query' parameter")
	}

	req, err := nlquery.Translate(strings.ToLower(query))
	if err != nil {
		return nil, err
	}

	result, err := m.Filter(ctx, req)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Data:  result.Data,
		Count: result.Count,
		InterpretedQuery: nlquery.Interpretation{
			Original:      query,
			ParsedFilters: req,
		},
	}, nil
}

// load reads the collection, wrapping store failures
func (m *Manager) load(ctx context.Context) ([]analysis.TextRecord, error) {
	records, err := m.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load strings")
	}
	return records, nil
}
