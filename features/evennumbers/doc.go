// Package evennumbers implements the Even Numbers query use case.
//
// The query returns all even numbers below an exclusive upper limit, in ascending order,
// and fails with quiz.ErrArgumentOutOfRange for limits lower than 1.
package evennumbers
