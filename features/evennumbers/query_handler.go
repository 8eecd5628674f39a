package evennumbers

import (
	"context"

	"github.com/AntonStoeckl/linq-quiz-go/quiz"
	"github.com/AntonStoeckl/linq-quiz-go/shell/observable"
)

// QueryHandler runs the Even Numbers query.
// It contains only the query logic; wrap it with observable.QueryWrapper for observability.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns the even numbers for the query, or ctx.Err() if the context is already done.
func (h QueryHandler) Handle(ctx context.Context, query Query) (EvenNumbers, error) {
	if err := ctx.Err(); err != nil {
		return EvenNumbers{}, err
	}

	numbers, err := quiz.GetEvenNumbers(query.ExclusiveUpperLimit)
	if err != nil {
		return EvenNumbers{}, err
	}

	return EvenNumbers{
		Numbers: numbers,
		Count:   len(numbers),
	}, nil
}

// NewObservableQueryHandler creates a QueryHandler wrapped with the given observability options.
func NewObservableQueryHandler(
	opts ...observable.QueryOption[Query, EvenNumbers],
) (*observable.QueryWrapper[Query, EvenNumbers], error) {
	return observable.NewQueryWrapper[Query, EvenNumbers](NewQueryHandler(), opts...)
}
