package evennumbers

// EvenNumbers represents the query result.
type EvenNumbers struct {
	Numbers []int32 `json:"numbers"`
	Count   int     `json:"count"`
}

// ResultSize returns the number of even numbers in the result.
func (r EvenNumbers) ResultSize() int {
	return r.Count
}
