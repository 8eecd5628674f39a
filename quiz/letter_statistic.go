package quiz

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// LetterCount is the number of occurrences of one upper-case letter.
// It is never built with a zero count.
type LetterCount struct {
	Letter              rune
	NumberOfOccurrences int
}

// LetterCounts is an alias type for a slice of LetterCount
type LetterCounts = []LetterCount

type letterCountJSON struct {
	Letter              string `json:"letter"`
	NumberOfOccurrences int    `json:"numberOfOccurrences"`
}

// GetLetterStatistic returns the number of occurrences of each letter in text.
//
// Casing is ignored: the text is upper-cased before letters are classified and counted, so 'a' is counted as 'A'.
// Digits, whitespace, punctuation, and symbols are skipped. Only letters that occur in text are returned,
// in the order they first appear; callers should not rely on that order.
func GetLetterStatistic(text string) LetterCounts {
	letterCounts := LetterCounts{}
	positions := make(map[rune]int)

	for _, character := range strings.ToUpper(text) {
		if !unicode.IsLetter(character) {
			continue
		}

		if pos, seen := positions[character]; seen {
			letterCounts[pos].NumberOfOccurrences++
			continue
		}

		positions[character] = len(letterCounts)
		letterCounts = append(letterCounts, LetterCount{Letter: character, NumberOfOccurrences: 1})
	}

	return letterCounts
}

// LetterCountsToMap converts letter counts to a map keyed by letter, for order-independent comparison.
func LetterCountsToMap(letterCounts LetterCounts) map[rune]int {
	counts := make(map[rune]int, len(letterCounts))
	for _, letterCount := range letterCounts {
		counts[letterCount.Letter] += letterCount.NumberOfOccurrences
	}

	return counts
}

// MarshalJSON encodes the letter as a one-character string.
func (c LetterCount) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(letterCountJSON{
		Letter:              string(c.Letter),
		NumberOfOccurrences: c.NumberOfOccurrences,
	})
}

// UnmarshalJSON decodes a LetterCount written by MarshalJSON.
// It returns ErrInvalidLetter unless the letter is exactly one upper-case letter,
// and ErrInvalidLetterCount if the number of occurrences is lower than 1.
func (c *LetterCount) UnmarshalJSON(data []byte) error {
	var decoded letterCountJSON
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &decoded); err != nil {
		return err
	}

	if utf8.RuneCountInString(decoded.Letter) != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidLetter, decoded.Letter)
	}

	letter, _ := utf8.DecodeRuneInString(decoded.Letter)
	if !unicode.IsLetter(letter) || unicode.ToUpper(letter) != letter {
		return fmt.Errorf("%w: got %q", ErrInvalidLetter, decoded.Letter)
	}

	if decoded.NumberOfOccurrences < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLetterCount, decoded.NumberOfOccurrences)
	}

	c.Letter = letter
	c.NumberOfOccurrences = decoded.NumberOfOccurrences

	return nil
}
