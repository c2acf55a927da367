package filter

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethanbaker/stringanalyzer/pkg/errs"
)

// Parameter names accepted by Parse
const (
	ParamIsPalindrome      = "is_palindrome"
	ParamMinLength         = "min_length"
	ParamMaxLength         = "max_length"
	ParamWordCount         = "word_count"
	ParamContainsCharacter = "contains_character"
)

// Params lists the accepted parameters in validation order
var Params = []string{ParamIsPalindrome, ParamMinLength, ParamMaxLength, ParamWordCount, ParamContainsCharacter}

// Request is a set of typed filters. A nil field imposes no constraint.
type Request struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty" yaml:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty" yaml:"contains_character,omitempty"`
}

// IsEmpty reports whether no filter is set
func (r Request) IsEmpty() bool {
	return r.IsPalindrome == nil && r.MinLength == nil && r.MaxLength == nil && r.WordCount == nil && r.ContainsCharacter == nil
}

// Bool, Int and String build optional fields
func Bool(v bool) *bool       { return &v }
func Int(v int) *int          { return &v }
func String(v string) *string { return &v }

// Parse validates and coerces raw parameters into a Request. Every field is
// checked before anything is returned, and the first malformed field fails the
// whole request. Missing keys and nil values are treated as absent.
func Parse(raw map[string]any) (Request, error) {
	var req Request

	if v, ok := present(raw, ParamIsPalindrome); ok {
		req.IsPalindrome = Bool(parseBool(v))
	}

	for _, field := range []struct {
		name string
		dst  **int
	}{
		{ParamMinLength, &req.MinLength},
		{ParamMaxLength, &req.MaxLength},
		{ParamWordCount, &req.WordCount},
	} {
		v, ok := present(raw, field.name)
		if !ok {
			continue
		}

		n, err := parseInt(v)
		if err != nil {
			return Request{}, errs.Validation(field.name, "%s must be an integer", field.name)
		}
		*field.dst = Int(n)
	}

	if v, ok := present(raw, ParamContainsCharacter); ok {
		s, isString := v.(string)
		if !isString {
			return Request{}, errs.Validation(ParamContainsCharacter, "%s must be a string", ParamContainsCharacter)
		}
		req.ContainsCharacter = String(strings.ToLower(s))
	}

	return req, nil
}

// RawValues keeps the first value of each known key from URL query values, in the
// shape Parse and ApplyRaw accept. Unknown keys are dropped.
func RawValues(values url.Values) map[string]any {
	raw := make(map[string]any, len(Params))
	for _, key := range Params {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			raw[key] = vs[0]
		}
	}
	return raw
}

// Values encodes the request back into query parameters
func (r Request) Values() url.Values {
	values := url.Values{}
	if r.IsPalindrome != nil {
		values.Set(ParamIsPalindrome, strconv.FormatBool(*r.IsPalindrome))
	}
	if r.MinLength != nil {
		values.Set(ParamMinLength, strconv.Itoa(*r.MinLength))
	}
	if r.MaxLength != nil {
		values.Set(ParamMaxLength, strconv.Itoa(*r.MaxLength))
	}
	if r.WordCount != nil {
		values.Set(ParamWordCount, strconv.Itoa(*r.WordCount))
	}
	if r.ContainsCharacter != nil {
		values.Set(ParamContainsCharacter, *r.ContainsCharacter)
	}
	return values
}

func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// parseBool accepts a native bool; anything else is true only when its text is "true"
func parseBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		return strings.EqualFold(fmt.Sprint(v), "true")
	}
}

// parseInt accepts base-10 integer text and integral numbers
func parseInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
