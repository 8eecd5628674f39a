package familystatistic

import (
	"github.com/AntonStoeckl/linq-quiz-go/quiz"
)

const (
	queryType = "FamilyStatistic"
)

// Query represents the intent to summarize the given families.
type Query struct {
	Families []quiz.Family
}

// BuildQuery creates a new Query. The families are used as a read-only view and never modified.
func BuildQuery(families []quiz.Family) Query {
	return Query{
		Families: families,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
