// Package squares implements the Squares query use case.
//
// The query returns the squares of the multiples of 7 below an exclusive upper limit, in descending order.
// Limits lower than 1 yield an empty result; a square beyond the int32 range fails the query
// with quiz.ErrArithmeticOverflow.
package squares
