package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Properties holds every value derived from a single string
type Properties struct {
	Length                int            `json:"length" yaml:"length"`                                   // Number of characters in the raw value
	IsPalindrome          bool           `json:"is_palindrome" yaml:"is_palindrome"`                     // Palindrome over lowercased ASCII letters and digits
	UniqueCharacters      int            `json:"unique_characters" yaml:"unique_characters"`             // Distinct characters, case-sensitive
	WordCount             int            `json:"word_count" yaml:"word_count"`                           // Whitespace-delimited tokens
	SHA256Hash            string         `json:"sha256_hash" yaml:"sha256_hash"`                         // Hex digest of the raw value
	CharacterFrequencyMap map[string]int `json:"character_frequency_map" yaml:"character_frequency_map"` // Occurrences of each exact character
}

// Analyze computes the properties of a value. The value is never trimmed or
// case-folded except where a single property says otherwise, so the hash stays a
// faithful identity of the submitted bytes.
func Analyze(value string) Properties {
	frequency := make(map[string]int)
	for _, r := range value {
		frequency[string(r)]++
	}

	return Properties{
		Length:                utf8.RuneCountInString(value),
		IsPalindrome:          IsPalindrome(value),
		UniqueCharacters:      len(frequency),
		WordCount:             WordCount(value),
		SHA256Hash:            Hash(value),
		CharacterFrequencyMap: frequency,
	}
}

// Hash returns the hex encoded SHA-256 digest of the raw value
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// IsPalindrome lowercases the value, keeps only ASCII letters and digits and
// compares the result with its reversal. An empty normalized value counts.
func IsPalindrome(value string) bool {
	normalized := normalize(value)
	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}

// WordCount counts whitespace separated tokens. Blank values have no words.
func WordCount(value string) int {
	return len(strings.Fields(value))
}

// normalize strips everything but [a-z0-9] from the lowercased value
func normalize(value string) []byte {
	lowered := strings.ToLower(value)

	out := make([]byte, 0, len(lowered))
	for i := 0; i < len(lowered); i++ {
		c := lowered[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			out = append(out, c)
		}
	}
	return out
}
