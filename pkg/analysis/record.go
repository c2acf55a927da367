package analysis

import "time"

// TextRecord is a stored string together with its derived properties. Records are
// never edited once created; they are only added or removed.
type TextRecord struct {
	ID         string     `json:"id" yaml:"id"`                 // SHA-256 of Value, also the deduplication key
	Value      string     `json:"value" yaml:"value"`           // Value exactly as submitted
	Properties Properties `json:"properties" yaml:"properties"` // Analyzer output
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"` // Insertion time (UTC)
}

// NewRecord analyzes a value and wraps it in a record created at the given time
func NewRecord(value string, createdAt time.Time) TextRecord {
	props := Analyze(value)

	return TextRecord{
		ID:         props.SHA256Hash,
		Value:      value,
		Properties: props,
		CreatedAt:  createdAt.UTC(),
	}
}
