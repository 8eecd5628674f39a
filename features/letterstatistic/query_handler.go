package letterstatistic

import (
	"context"

	"github.com/AntonStoeckl/linq-quiz-go/quiz"
	"github.com/AntonStoeckl/linq-quiz-go/shell/observable"
)

// QueryHandler runs the Letter Statistic query.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns the letter counts for the query, or ctx.Err() if the context is already done.
func (h QueryHandler) Handle(ctx context.Context, query Query) (LetterStatistic, error) {
	if err := ctx.Err(); err != nil {
		return LetterStatistic{}, err
	}

	letters := quiz.GetLetterStatistic(query.Text)

	return LetterStatistic{
		Letters: letters,
		Count:   len(letters),
	}, nil
}

// NewObservableQueryHandler creates a QueryHandler wrapped with the given observability options.
func NewObservableQueryHandler(
	opts ...observable.QueryOption[Query, LetterStatistic],
) (*observable.QueryWrapper[Query, LetterStatistic], error) {
	return observable.NewQueryWrapper[Query, LetterStatistic](NewQueryHandler(), opts...)
}
