package squares

const (
	queryType = "Squares"
)

// Query represents the intent to list the squares of the multiples of 7 below ExclusiveUpperLimit.
type Query struct {
	ExclusiveUpperLimit int32
}

// BuildQuery creates a new Query.
func BuildQuery(exclusiveUpperLimit int32) Query {
	return Query{
		ExclusiveUpperLimit: exclusiveUpperLimit,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
