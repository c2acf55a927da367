package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
)

// FileStore keeps the collection as a pretty-printed JSON array in a single file
type FileStore struct {
	path  string
	mutex sync.RWMutex
}

// NewFileStore creates a file store, creating the parent directory and an empty
// collection when the file does not exist yet
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
			return nil, fmt.Errorf("failed to create data file: %w", err)
		}
	}

	return &FileStore{path: path}, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection. An empty or unreadable JSON document loads as an
// empty collection.
func (s *FileStore) Load(ctx context.Context) ([]analysis.TextRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []analysis.TextRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if len(data) == 0 {
		return []analysis.TextRecord{}, nil
	}

	var records []analysis.TextRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Logger.Warnw("[STORE]: Data file is not valid JSON, treating as empty", "path", s.path, "error", err)
		return []analysis.TextRecord{}, nil
	}

	if records == nil {
		records = []analysis.TextRecord{}
	}
	return records, nil
}

// Save writes the collection to a temporary file and renames it into place
func (s *FileStore) Save(ctx context.Context, records []analysis.TextRecord) error {
	if records == nil {
		records = []analysis.TextRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}
