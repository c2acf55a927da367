package records

import (
	"context"
	"maps"
	"sync"

	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
)

// InMemoryStore keeps the collection in process memory. Data does not survive a restart.
type InMemoryStore struct {
	records []analysis.TextRecord
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory record store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: []analysis.TextRecord{},
	}
}

// Load returns a copy of the stored records
func (s *InMemoryStore) Load(ctx context.Context) ([]analysis.TextRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return copyRecords(s.records), nil
}

// Save replaces the stored records with a copy of the given ones
func (s *InMemoryStore) Save(ctx context.Context, records []analysis.TextRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.records = copyRecords(records)
	return nil
}

// copyRecords copies records deeply enough that callers cannot mutate stored maps
func copyRecords(records []analysis.TextRecord) []analysis.TextRecord {
	out := make([]analysis.TextRecord, len(records))
	for i, record := range records {
		out[i] = record
		out[i].Properties.CharacterFrequencyMap = maps.Clone(record.Properties.CharacterFrequencyMap)
	}
	return out
}
