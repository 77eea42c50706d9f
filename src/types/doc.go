// Package types contains all the type values the checker can assign to an
// expression, along with the algebra each family of types supports. A type is
// anything that can name itself and compare itself against another type.
// Scalars are simple tags compared by name, matrices carry a shape and
// intervals carry bounds over the extended reals. Each family only knows how to
// combine with values of the same family; deciding which family is active for
// a given check is left to the caller.
package types //nolint:revive
