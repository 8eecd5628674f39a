package quiz

import (
	"fmt"
)

// GetEvenNumbers returns all even numbers in [1, exclusiveUpperLimit) in ascending order.
//
// It returns ErrArgumentOutOfRange if exclusiveUpperLimit is lower than 1.
func GetEvenNumbers(exclusiveUpperLimit int32) ([]int32, error) {
	if exclusiveUpperLimit < 1 {
		return nil, fmt.Errorf("%w: exclusiveUpperLimit must be >= 1, got %d", ErrArgumentOutOfRange, exclusiveUpperLimit)
	}

	// counting halves instead of stepping by 2 keeps the loop safe at math.MaxInt32
	count := (exclusiveUpperLimit - 1) / 2
	evenNumbers := make([]int32, 0, count)
	for half := int32(1); half <= count; half++ {
		evenNumbers = append(evenNumbers, 2*half)
	}

	return evenNumbers, nil
}
