package familystatistic

import (
	"github.com/AntonStoeckl/linq-quiz-go/quiz"
)

// FamilyStatistic represents the query result.
type FamilyStatistic struct {
	Summaries []quiz.FamilySummary `json:"summaries"`
	Count     int                  `json:"count"`
}

// ResultSize returns the number of family summaries in the result.
func (r FamilyStatistic) ResultSize() int {
	return r.Count
}
