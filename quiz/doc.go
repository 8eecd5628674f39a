// Package quiz contains the pure core of the library: four independent
// collection queries and the small data model one of them consumes.
//
//   - GetEvenNumbers: even integers below an exclusive upper limit
//   - GetSquares: squares of the multiples of 7 below a limit, descending
//   - GetFamilyStatistic: member count and average age per family
//   - GetLetterStatistic: case-insensitive letter frequencies of a text
//
// Every function is stateless and allocates a fresh result, so all of them
// are safe for concurrent use. Nothing in here logs, measures, or touches I/O;
// the query handlers in the features packages add that around these functions.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package quiz
