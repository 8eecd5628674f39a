// Package familystatistic implements the Family Statistic query use case.
//
// The query returns one summary per family (member count and average age), in input order.
// A query built without families fails with quiz.ErrArgumentNil.
package familystatistic
