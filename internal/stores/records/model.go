package records

import (
	"time"

	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
)

// RecordModel represents the database model for analyzed strings
type RecordModel struct {
	ID       string `json:"id" gorm:"column:id;primaryKey;size:64"`
	Position int    `json:"position" gorm:"column:position;not null;index"` // Insertion order within the collection
	Value    string `json:"value" gorm:"column:value;type:text;not null"`

	Length                int            `json:"length" gorm:"column:length;not null"`
	IsPalindrome          bool           `json:"is_palindrome" gorm:"column:is_palindrome;not null;index"`
	UniqueCharacters      int            `json:"unique_characters" gorm:"column:unique_characters;not null"`
	WordCount             int            `json:"word_count" gorm:"column:word_count;not null"`
	SHA256Hash            string         `json:"sha256_hash" gorm:"column:sha256_hash;size:64;not null"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map" gorm:"column:character_frequency_map;type:text;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName sets the table name for GORM
func (RecordModel) TableName() string {
	return "text_records"
}

// toModel converts a record at the given collection position
func toModel(record analysis.TextRecord, position int) RecordModel {
	props := record.Properties

	return RecordModel{
		ID:                    record.ID,
		Position:              position,
		Value:                 record.Value,
		Length:                props.Length,
		IsPalindrome:          props.IsPalindrome,
		UniqueCharacters:      props.UniqueCharacters,
		WordCount:             props.WordCount,
		SHA256Hash:            props.SHA256Hash,
		CharacterFrequencyMap: props.CharacterFrequencyMap,
		CreatedAt:             record.CreatedAt,
	}
}

// toRecord converts a database row back into a record
func (m RecordModel) toRecord() analysis.TextRecord {
	frequency := m.CharacterFrequencyMap
	if frequency == nil {
		frequency = map[string]int{}
	}

	return analysis.TextRecord{
		ID:    m.ID,
		Value: m.Value,
		Properties: analysis.Properties{
			Length:                m.Length,
			IsPalindrome:          m.IsPalindrome,
			UniqueCharacters:      m.UniqueCharacters,
			WordCount:             m.WordCount,
			SHA256Hash:            m.SHA256Hash,
			CharacterFrequencyMap: frequency,
		},
		CreatedAt: m.CreatedAt.UTC(),
	}
}
