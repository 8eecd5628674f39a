package familystatistic

import (
	"context"

	"github.com/AntonStoeckl/linq-quiz-go/quiz"
	"github.com/AntonStoeckl/linq-quiz-go/shell/observable"
)

// QueryHandler runs the Family Statistic query.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns the family summaries for the query, or ctx.Err() if the context is already done.
func (h QueryHandler) Handle(ctx context.Context, query Query) (FamilyStatistic, error) {
	if err := ctx.Err(); err != nil {
		return FamilyStatistic{}, err
	}

	summaries, err := quiz.GetFamilyStatistic(query.Families)
	if err != nil {
		return FamilyStatistic{}, err
	}

	return FamilyStatistic{
		Summaries: summaries,
		Count:     len(summaries),
	}, nil
}

// NewObservableQueryHandler creates a QueryHandler wrapped with the given observability options.
func NewObservableQueryHandler(
	opts ...observable.QueryOption[Query, FamilyStatistic],
) (*observable.QueryWrapper[Query, FamilyStatistic], error) {
	return observable.NewQueryWrapper[Query, FamilyStatistic](NewQueryHandler(), opts...)
}
