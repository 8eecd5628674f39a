package squares

import (
	"context"

	"github.com/AntonStoeckl/linq-quiz-go/quiz"
	"github.com/AntonStoeckl/linq-quiz-go/shell/observable"
)

// QueryHandler runs the Squares query.
type QueryHandler struct{}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler() QueryHandler {
	return QueryHandler{}
}

// Handle returns the squares for the query, or ctx.Err() if the context is already done.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Squares, error) {
	if err := ctx.Err(); err != nil {
		return Squares{}, err
	}

	squares, err := quiz.GetSquares(query.ExclusiveUpperLimit)
	if err != nil {
		return Squares{}, err
	}

	return Squares{
		Squares: squares,
		Count:   len(squares),
	}, nil
}

// NewObservableQueryHandler creates a QueryHandler wrapped with the given observability options.
func NewObservableQueryHandler(
	opts ...observable.QueryOption[Query, Squares],
) (*observable.QueryWrapper[Query, Squares], error) {
	return observable.NewQueryWrapper[Query, Squares](NewQueryHandler(), opts...)
}
