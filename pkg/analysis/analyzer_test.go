package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		props := Analyze("")

		assert.Equal(t, 0, props.Length)
		assert.Equal(t, 0, props.WordCount)
		assert.True(t, props.IsPalindrome)
		assert.Equal(t, 0, props.UniqueCharacters)
		assert.Empty(t, props.CharacterFrequencyMap)
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", props.SHA256Hash)
	})

	t.Run("frequency and unique characters", func(t *testing.T) {
		props := Analyze("aabbba")

		assert.Equal(t, 6, props.Length)
		assert.Equal(t, 2, props.UniqueCharacters)
		assert.Equal(t, map[string]int{"a": 3, "b": 3}, props.CharacterFrequencyMap)
	})

	t.Run("whitespace and case count as characters", func(t *testing.T) {
		props := Analyze("Aa a")

		assert.Equal(t, 4, props.Length)
		assert.Equal(t, 3, props.UniqueCharacters)
		assert.Equal(t, map[string]int{"A": 1, "a": 2, " ": 1}, props.CharacterFrequencyMap)
		assert.Equal(t, 2, props.WordCount)
	})

	t.Run("raw value is not trimmed", func(t *testing.T) {
		props := Analyze("  hello  ")

		assert.Equal(t, 9, props.Length)
		assert.Equal(t, 1, props.WordCount)
		assert.NotEqual(t, Hash("hello"), props.SHA256Hash)
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		props := Analyze("héé")

		assert.Equal(t, 3, props.Length)
		assert.Equal(t, map[string]int{"h": 1, "é": 2}, props.CharacterFrequencyMap)
	})
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"a", true},
		{"racecar", true},
		{"RaceCar", true},
		{"A man a plan a canal Panama", true},
		{"A man, a plan, a canal: Panama!", true},
		{"Not a palindrome", false},
		{"12321", true},
		{"12345", false},
		{"!!! ???", true},
		{"ab", false},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			assert.Equal(t, test.expected, IsPalindrome(test.value))
			assert.Equal(t, test.expected, Analyze(test.value).IsPalindrome)
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"empty", "", 0},
		{"only whitespace", " \t\n ", 0},
		{"single word", "hello", 1},
		{"padded single word", "   hello   ", 1},
		{"mixed separators", "one\ttwo\nthree  four", 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, WordCount(test.value))
		})
	}
}

func TestHash(t *testing.T) {
	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, Hash("hello world"), Hash("hello world"))
		assert.Equal(t, Analyze("hello world"), Analyze("hello world"))
	})

	t.Run("sensitive to every character", func(t *testing.T) {
		base := Hash("hello world")
		assert.NotEqual(t, base, Hash("hello World"))
		assert.NotEqual(t, base, Hash("hello world "))
		assert.NotEqual(t, base, Hash("hello worle"))
	})

	t.Run("hex encoded sha256", func(t *testing.T) {
		assert.Len(t, Hash("abc"), 64)
		assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash("abc"))
	})
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*60*60))

	record := NewRecord("level", now)

	require.Equal(t, Hash("level"), record.ID)
	assert.Equal(t, record.ID, record.Properties.SHA256Hash)
	assert.Equal(t, "level", record.Value)
	assert.True(t, record.Properties.IsPalindrome)
	assert.Equal(t, time.UTC, record.CreatedAt.Location())
	assert.True(t, now.Equal(record.CreatedAt))
}
