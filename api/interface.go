// Package api define types and errors common to all index
// algorithms implemented by this package.
package api

// CompareFunc define a strict total order over items held by an
// index. Return negative integer if item `a` sort before item `b`,
// ZERO if both items are equal under the order, positive integer
// otherwise. Items equal under the order are treated as duplicates.
type CompareFunc func(a, b interface{}) int

// FreeFunc callback to release application resources held by an
// item. Invoked exactly once when the item leaves the index, either
// via a delete operation or via index teardown. Callback shall not
// re-enter the index.
type FreeFunc func(item interface{})

// NodeIterator callback from Walk and Range APIs, invoked for every
// item in sort order. Return false to stop the iteration.
type NodeIterator func(item interface{}) bool
