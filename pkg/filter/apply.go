package filter

import (
	"strings"

	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
)

// Result is the outcome of applying a Request to a sequence of records
type Result struct {
	Data           []analysis.TextRecord `json:"data" yaml:"data"`
	Count          int                   `json:"count" yaml:"count"`
	FiltersApplied Request               `json:"filters_applied" yaml:"filters_applied"`
}

// Matches reports whether a record satisfies every filter in the request
func (r Request) Matches(record analysis.TextRecord) bool {
	props := record.Properties

	if r.IsPalindrome != nil && props.IsPalindrome != *r.IsPalindrome {
		return false
	}
	if r.MinLength != nil && props.Length < *r.MinLength {
		return false
	}
	if r.MaxLength != nil && props.Length > *r.MaxLength {
		return false
	}
	if r.WordCount != nil && props.WordCount != *r.WordCount {
		return false
	}
	if r.ContainsCharacter != nil && !strings.Contains(strings.ToLower(record.Value), strings.ToLower(*r.ContainsCharacter)) {
		return false
	}

	return true
}

// Apply keeps the records matching the request, preserving input order. The
// input slice is not modified.
func Apply(records []analysis.TextRecord, req Request) Result {
	data := make([]analysis.TextRecord, 0, len(records))
	for _, record := range records {
		if req.Matches(record) {
			data = append(data, record)
		}
	}

	return Result{
		Data:           data,
		Count:          len(data),
		FiltersApplied: req,
	}
}

// ApplyRaw validates raw parameters and applies them. Nothing is filtered when
// any parameter is malformed.
func ApplyRaw(records []analysis.TextRecord, raw map[string]any) (Result, error) {
	req, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}
	return Apply(records, req), nil
}
