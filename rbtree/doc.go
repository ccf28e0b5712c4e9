// Package rbtree implement a comparator driven, self-balancing
// version of binary-tree, called, Red-Black tree.
//
//   * Index opaque items over an application supplied total order.
//   * Each item shall be unique within the index sample-set.
//   * Guaranteed O(log n) insert, lookup and delete.
//   * Optional item destructor invoked when items leave the index.
//
// In single-threaded settings, reads and writes are serialized.
// Trees perform no internal synchronization, applications shall
// serialize mutating access externally.
package rbtree
