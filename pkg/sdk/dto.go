package sdk

import (
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"github.com/ethanbaker/stringanalyzer/pkg/filter"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
)

// CreateStringRequest is the body for creating a string
type CreateStringRequest struct {
	Value string `json:"value"`
}

// ErrorBody is the body returned with every non-2xx response
type ErrorBody struct {
	Error string `json:"error" yaml:"error"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"` // Offending field for validation errors
}

// StringResponse is a single stored string with its properties
type StringResponse = analysis.TextRecord

// ListStringsResponse is the result of listing strings with structured filters
type ListStringsResponse = filter.Result

// QueryResponse is the result of a natural language query
type QueryResponse = library.QueryResult

// ListParams are the structured filters sent when listing strings
type ListParams = filter.Request
