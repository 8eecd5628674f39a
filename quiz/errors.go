package quiz

import (
	"errors"
)

var (
	// ErrArgumentOutOfRange is returned when a numeric argument is outside its valid range.
	ErrArgumentOutOfRange = errors.New("argument out of range")

	// ErrArithmeticOverflow is returned when a computed value does not fit into an int32.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrArgumentNil is returned when a required argument is absent.
	ErrArgumentNil = errors.New("argument must not be nil")
)

var (
	// ErrInvalidLetter is returned when an encoded LetterCount does not hold exactly one upper-case letter.
	ErrInvalidLetter = errors.New("letter must be exactly one upper-case letter")

	// ErrInvalidLetterCount is returned when an encoded LetterCount has fewer than one occurrence.
	ErrInvalidLetterCount = errors.New("number of occurrences must be at least 1")
)
