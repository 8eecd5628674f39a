package squares

// Squares represents the query result, ordered from the largest square to the smallest.
type Squares struct {
	Squares []int32 `json:"squares"`
	Count   int     `json:"count"`
}

// ResultSize returns the number of squares in the result.
func (r Squares) ResultSize() int {
	return r.Count
}
