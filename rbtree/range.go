package rbtree

import "github.com/VladimirBangPow/rbstore/api"

// Walk visit every indexed item in ascending order under the
// tree's total order. Iterator can return false to stop the walk.
// For inspection and export, not a performance path.
func (t *RBTree) Walk(iter api.NodeIterator) {
	t.n_ranges++
	t.walk(t.root, iter)
}

func (t *RBTree) walk(nd *node, iter api.NodeIterator) bool {
	if nd == t.sentinel {
		return true
	}
	if !t.walk(nd.left, iter) {
		return false
	}
	if iter != nil && !iter(nd.item) {
		return false
	}
	return t.walk(nd.right, iter)
}

// Range over items bounded by low and high, incl can be "both",
// "low", "high" or "none". A nil bound leaves that side open.
func (t *RBTree) Range(low, high interface{}, incl string, iter api.NodeIterator) {
	t.n_ranges++
	switch incl {
	case "both":
		t.rangefromfind(t.root, low, high, iter)
	case "high":
		t.rangeafterfind(t.root, low, high, iter)
	case "low":
		t.rangefromtill(t.root, low, high, iter)
	default:
		t.rangeaftertill(t.root, low, high, iter)
	}
}

// low <= (keys) <= high
func (t *RBTree) rangefromfind(nd *node, lk, hk interface{}, iter api.NodeIterator) bool {
	if nd == t.sentinel {
		return true
	}
	if hk != nil && t.cmp(nd.item, hk) > 0 {
		return t.rangefromfind(nd.left, lk, hk, iter)
	}
	if lk != nil && t.cmp(nd.item, lk) < 0 {
		return t.rangefromfind(nd.right, lk, hk, iter)
	}
	if !t.rangefromfind(nd.left, lk, hk, iter) {
		return false
	}
	if iter != nil && !iter(nd.item) {
		return false
	}
	return t.rangefromfind(nd.right, lk, hk, iter)
}

// low <= (keys) < high
func (t *RBTree) rangefromtill(nd *node, lk, hk interface{}, iter api.NodeIterator) bool {
	if nd == t.sentinel {
		return true
	}
	if hk != nil && t.cmp(nd.item, hk) >= 0 {
		return t.rangefromtill(nd.left, lk, hk, iter)
	}
	if lk != nil && t.cmp(nd.item, lk) < 0 {
		return t.rangefromtill(nd.right, lk, hk, iter)
	}
	if !t.rangefromtill(nd.left, lk, hk, iter) {
		return false
	}
	if iter != nil && !iter(nd.item) {
		return false
	}
	return t.rangefromtill(nd.right, lk, hk, iter)
}

// low < (keys) <= high
func (t *RBTree) rangeafterfind(nd *node, lk, hk interface{}, iter api.NodeIterator) bool {
	if nd == t.sentinel {
		return true
	}
	if hk != nil && t.cmp(nd.item, hk) > 0 {
		return t.rangeafterfind(nd.left, lk, hk, iter)
	}
	if lk != nil && t.cmp(nd.item, lk) <= 0 {
		return t.rangeafterfind(nd.right, lk, hk, iter)
	}
	if !t.rangeafterfind(nd.left, lk, hk, iter) {
		return false
	}
	if iter != nil && !iter(nd.item) {
		return false
	}
	return t.rangeafterfind(nd.right, lk, hk, iter)
}

// low < (keys) < high
func (t *RBTree) rangeaftertill(nd *node, lk, hk interface{}, iter api.NodeIterator) bool {
	if nd == t.sentinel {
		return true
	}
	if hk != nil && t.cmp(nd.item, hk) >= 0 {
		return t.rangeaftertill(nd.left, lk, hk, iter)
	}
	if lk != nil && t.cmp(nd.item, lk) <= 0 {
		return t.rangeaftertill(nd.right, lk, hk, iter)
	}
	if !t.rangeaftertill(nd.left, lk, hk, iter) {
		return false
	}
	if iter != nil && !iter(nd.item) {
		return false
	}
	return t.rangeaftertill(nd.right, lk, hk, iter)
}
