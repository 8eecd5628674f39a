// Package letterstatistic implements the Letter Statistic query use case.
//
// The query returns how often each letter occurs in a text, ignoring case and every non-letter.
// It never fails on its input; only a done context makes it return an error.
package letterstatistic
