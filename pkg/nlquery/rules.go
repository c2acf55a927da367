package nlquery

import (
	"math"
	"regexp"
	"strconv"

	"github.com/ethanbaker/stringanalyzer/pkg/filter"
)

// Rule extracts a partial filter from a lowercased query. A rule that does not
// fire returns false and its patch is ignored.
type Rule struct {
	Name    string
	Extract func(text string) (filter.Request, bool)
}

var (
	palindromePattern   = regexp.MustCompile(`\bpalindromic\b|\bpalindrome\b`)
	singleWordPattern   = regexp.MustCompile(`\bsingle word\b|\bone word\b`)
	longerPattern       = regexp.MustCompile(`longer than (\d+)`)
	atLeastPattern      = regexp.MustCompile(`at least (\d+)|longer than or equal to (\d+)`)
	shorterPattern      = regexp.MustCompile(`shorter than (\d+)`)
	containsLetterRegex = regexp.MustCompile(`containing the letter (\w)`)
	containsRegex       = regexp.MustCompile(`containing (\w)`)
)

// Rules is the ordered extraction list. Patches are merged in this order and a
// later rule overwrites any field an earlier rule set, so "at least N" wins over
// "longer than N" when both appear.
var Rules = []Rule{
	{Name: "palindrome", Extract: extractPalindrome},
	{Name: "single_word", Extract: extractSingleWord},
	{Name: "longer_than", Extract: extractLongerThan},
	{Name: "at_least", Extract: extractAtLeast},
	{Name: "shorter_than", Extract: extractShorterThan},
	{Name: "containing", Extract: extractContaining},
}

func extractPalindrome(text string) (filter.Request, bool) {
	if !palindromePattern.MatchString(text) {
		return filter.Request{}, false
	}
	return filter.Request{IsPalindrome: filter.Bool(true)}, true
}

func extractSingleWord(text string) (filter.Request, bool) {
	if !singleWordPattern.MatchString(text) {
		return filter.Request{}, false
	}
	return filter.Request{WordCount: filter.Int(1)}, true
}

func extractLongerThan(text string) (filter.Request, bool) {
	n, ok := firstNumber(longerPattern, text)
	if !ok {
		return filter.Request{}, false
	}
	// No length exceeds MaxInt; saturate so the bound stays unsatisfiable
	if n == math.MaxInt {
		return filter.Request{MinLength: filter.Int(math.MaxInt)}, true
	}
	return filter.Request{MinLength: filter.Int(n + 1)}, true
}

func extractAtLeast(text string) (filter.Request, bool) {
	n, ok := firstNumber(atLeastPattern, text)
	if !ok {
		return filter.Request{}, false
	}
	return filter.Request{MinLength: filter.Int(n)}, true
}

func extractShorterThan(text string) (filter.Request, bool) {
	n, ok := firstNumber(shorterPattern, text)
	if !ok {
		return filter.Request{}, false
	}
	return filter.Request{MaxLength: filter.Int(n - 1)}, true
}

// extractContaining prefers "containing the letter X" over a bare "containing X"
func extractContaining(text string) (filter.Request, bool) {
	for _, pattern := range []*regexp.Regexp{containsLetterRegex, containsRegex} {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return filter.Request{ContainsCharacter: filter.String(m[1])}, true
		}
	}
	return filter.Request{}, false
}

// firstNumber returns the first non-empty numeric capture group of the first match
func firstNumber(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// merge overwrites every field of dst that patch sets
func merge(dst *filter.Request, patch filter.Request) {
	if patch.IsPalindrome != nil {
		dst.IsPalindrome = patch.IsPalindrome
	}
	if patch.MinLength != nil {
		dst.MinLength = patch.MinLength
	}
	if patch.MaxLength != nil {
		dst.MaxLength = patch.MaxLength
	}
	if patch.WordCount != nil {
		dst.WordCount = patch.WordCount
	}
	if patch.ContainsCharacter != nil {
		dst.ContainsCharacter = patch.ContainsCharacter
	}
}
