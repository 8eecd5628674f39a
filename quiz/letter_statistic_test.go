package quiz_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/linq-quiz-go/quiz"
)

func Test_GetLetterStatistic_CountsLettersIgnoringCase(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[rune]int
	}{
		{name: "empty_text", text: "", expected: map[rune]int{}},
		{name: "no_letters", text: "123 !?\t\n-_", expected: map[rune]int{}},
		{name: "mixed_case_with_noise", text: "aAbb3! c", expected: map[rune]int{'A': 2, 'B': 2, 'C': 1}},
		{name: "sentence", text: "Hello, World!", expected: map[rune]int{'H': 1, 'E': 1, 'L': 3, 'O': 2, 'W': 1, 'R': 1, 'D': 1}},
		{name: "non_ascii_letters", text: "äÄ ö", expected: map[rune]int{'Ä': 2, 'Ö': 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			letterCounts := quiz.GetLetterStatistic(tt.text)

			// assert
			assert.NotNil(t, letterCounts)
			assert.Len(t, letterCounts, len(tt.expected), "each letter appears once")
			assert.Equal(t, tt.expected, quiz.LetterCountsToMap(letterCounts))
		})
	}
}

func Test_GetLetterStatistic_NeverReturnsZeroCountsOrLowerCaseLetters(t *testing.T) {
	// act
	letterCounts := quiz.GetLetterStatistic("The quick brown fox jumps over the lazy dog 0123456789")

	// assert
	assert.Len(t, letterCounts, 26)
	for _, letterCount := range letterCounts {
		assert.Positive(t, letterCount.NumberOfOccurrences)
		assert.True(t, letterCount.Letter >= 'A' && letterCount.Letter <= 'Z', "%q should be upper case", letterCount.Letter)
	}
}

func Test_GetLetterStatistic_IsIdempotent(t *testing.T) {
	// act
	first := quiz.GetLetterStatistic("Mississippi")
	second := quiz.GetLetterStatistic("Mississippi")

	// assert
	assert.Equal(t, quiz.LetterCountsToMap(first), quiz.LetterCountsToMap(second))
	assert.Equal(t, map[rune]int{'M': 1, 'I': 4, 'S': 4, 'P': 2}, quiz.LetterCountsToMap(first))
}

func Test_LetterCount_JSON(t *testing.T) {
	// arrange
	letterCount := quiz.LetterCount{Letter: 'Ä', NumberOfOccurrences: 3}

	// act
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(letterCount)
	require.NoError(t, err)

	var decoded quiz.LetterCount
	err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &decoded)

	// assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"letter":"Ä","numberOfOccurrences":3}`, string(data))
	assert.Equal(t, letterCount, decoded)
}

func Test_LetterCount_UnmarshalJSON_Fails_WhenLetterIsNotOneUpperCaseLetter(t *testing.T) {
	for _, payload := range []string{
		`{"letter":"","numberOfOccurrences":1}`,
		`{"letter":"AB","numberOfOccurrences":1}`,
		`{"letter":"a","numberOfOccurrences":1}`,
		`{"letter":"ä","numberOfOccurrences":2}`,
		`{"letter":"3","numberOfOccurrences":1}`,
		`{"letter":"!","numberOfOccurrences":1}`,
	} {
		// act
		var decoded quiz.LetterCount
		err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(payload), &decoded)

		// assert
		assert.ErrorContains(t, err, quiz.ErrInvalidLetter.Error(), payload)
	}
}

func Test_LetterCount_UnmarshalJSON_Fails_WhenNumberOfOccurrencesIsLowerThanOne(t *testing.T) {
	for _, payload := range []string{
		`{"letter":"A","numberOfOccurrences":0}`,
		`{"letter":"A","numberOfOccurrences":-3}`,
		`{"letter":"A"}`,
	} {
		// act
		var decoded quiz.LetterCount
		err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(payload), &decoded)

		// assert
		assert.ErrorContains(t, err, quiz.ErrInvalidLetterCount.Error(), payload)
		assert.Equal(t, quiz.LetterCount{}, decoded, payload)
	}
}

func Test_LetterCount_UnmarshalJSON_AcceptsCaselessLetters(t *testing.T) {
	// act
	var decoded quiz.LetterCount
	err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(`{"letter":"中","numberOfOccurrences":1}`), &decoded)

	// assert
	require.NoError(t, err)
	assert.Equal(t, quiz.LetterCount{Letter: '中', NumberOfOccurrences: 1}, decoded)
}
