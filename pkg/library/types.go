package library

import (
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"github.com/ethanbaker/stringanalyzer/pkg/nlquery"
)

// QueryResult is the outcome of a natural language query
type QueryResult struct {
	Data             []analysis.TextRecord  `json:"data" yaml:"data"`
	Count            int                    `json:"count" yaml:"count"`
	InterpretedQuery nlquery.Interpretation `json:"interpreted_query" yaml:"interpreted_query"`
}
