package letterstatistic

import (
	"github.com/AntonStoeckl/linq-quiz-go/quiz"
)

// LetterStatistic represents the query result. The order of Letters carries no meaning.
type LetterStatistic struct {
	Letters quiz.LetterCounts `json:"letters"`
	Count   int               `json:"count"`
}

// ResultSize returns the number of distinct letters in the result.
func (r LetterStatistic) ResultSize() int {
	return r.Count
}
