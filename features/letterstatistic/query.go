package letterstatistic

const (
	queryType = "LetterStatistic"
)

// Query represents the intent to count the letters of Text.
type Query struct {
	Text string
}

// BuildQuery creates a new Query.
func BuildQuery(text string) Query {
	return Query{
		Text: text,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
