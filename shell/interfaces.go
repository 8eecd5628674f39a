package shell

import (
	"context"
)

// Query represents the contract for all query types of the library.
// Each query encapsulates the parameters needed to run one of the pure quiz functions.
// The QueryType method enables polymorphic handling and observability labeling.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types.
// ResultSize reports the number of rows in the result and is recorded as a metric.
type QueryResult interface {
	ResultSize() int
}

// CoreQueryHandler defines the contract for components that process queries with pure business logic.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
// Implementations should focus purely on business logic without observability concerns.
// This interface is designed to be wrapped with observability decorators for complete functionality.
type CoreQueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
