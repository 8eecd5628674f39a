// Package shell contains the infrastructure shared by all query slices of the library:
// the Query/QueryResult/QueryHandler contracts, the dependency-free observability
// interfaces with their recording helpers, and the JSON encoding of query results.
//
// This package implements the "imperative shell" around the pure functions in package quiz.
// Nothing in here changes what a query returns; it only instruments and transports results.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
