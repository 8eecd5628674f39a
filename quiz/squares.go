package quiz

import (
	"errors"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
)

const divisor = 7

// GetSquares returns the squares of all numbers in [1, exclusiveUpperLimit) that are divisible by 7,
// in descending order.
//
// The result is empty if exclusiveUpperLimit is lower than 1.
// It returns ErrArithmeticOverflow if a square does not fit into an int32, without any partial result.
//
// The loop walks the multiples 7k directly, from the largest down, instead of testing every number.
func GetSquares(exclusiveUpperLimit int32) ([]int32, error) {
	if exclusiveUpperLimit < 1 {
		return []int32{}, nil
	}

	maxFactor := (exclusiveUpperLimit - 1) / divisor

	// fail before allocating if the largest square overflows
	if _, err := checkedSquare(int64(maxFactor) * divisor); err != nil {
		return nil, err
	}

	squares := make([]int32, 0, maxFactor)

	for factor := maxFactor; factor >= 1; factor-- {
		square, err := checkedSquare(int64(factor) * divisor)
		if err != nil {
			return nil, err
		}

		squares = append(squares, square)
	}

	return squares, nil
}

// checkedSquare squares n in 64-bit and narrows the result back to int32.
func checkedSquare(n int64) (int32, error) {
	square, err := safeconversion.Int64ToInt32(n * n)
	if err != nil {
		return 0, errors.Join(ErrArithmeticOverflow, err)
	}

	return square, nil
}
