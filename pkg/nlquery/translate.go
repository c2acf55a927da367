// Package nlquery turns short English queries such as "palindromic strings longer
// than 3" into structured filters using an ordered list of pattern rules.
package nlquery

import (
	"strings"

	"github.com/ethanbaker/stringanalyzer/pkg/errs"
	"github.com/ethanbaker/stringanalyzer/pkg/filter"
)

// Interpretation echoes a query next to the filters derived from it
type Interpretation struct {
	Original      string         `json:"original" yaml:"original"`
	ParsedFilters filter.Request `json:"parsed_filters" yaml:"parsed_filters"`
}

// Translate runs every rule over the lowercased text and merges the patches in
// rule order. It fails with an unparseable query error when nothing fired and with
// a conflicting filters error when the length bounds cannot both hold.
func Translate(text string) (filter.Request, error) {
	return TranslateWith(Rules, text)
}

// TranslateWith translates using a custom ordered rule list
func TranslateWith(rules []Rule, text string) (filter.Request, error) {
	text = strings.ToLower(text)

	var req filter.Request
	for _, rule := range rules {
		if patch, ok := rule.Extract(text); ok {
			merge(&req, patch)
		}
	}

	if req.IsEmpty() {
		return filter.Request{}, errs.UnparseableQuery(text)
	}

	if req.MinLength != nil && req.MaxLength != nil && *req.MinLength > *req.MaxLength {
		return filter.Request{}, errs.ConflictingFilters(*req.MinLength, *req.MaxLength)
	}

	return req, nil
}

// Interpret translates a query and pairs the result with the original text
func Interpret(query string) (Interpretation, error) {
	req, err := Translate(query)
	if err != nil {
		return Interpretation{}, err
	}

	return Interpretation{
		Original:      query,
		ParsedFilters: req,
	}, nil
}
