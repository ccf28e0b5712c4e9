package rbtree

import "fmt"
import "errors"

import "github.com/VladimirBangPow/rbstore/lib"

// red-black rule, no red node has a red parent or child.
var redafterred = errors.New("consecutive red spotted")

// red-black rule, same number of blacks on every root-to-leaf path.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate walk the full tree and confirm every red-black invariant,
// the comparator sort order and the statistics book-keeping. Panics
// on the first violation found. The tree never runs these checks on
// its own, tests and maintenance tools drive them.
func (t *RBTree) Validate() {
	if t.dead {
		panic("Validate(): dead tree")
	}
	if t.sentinel.isred() {
		panic(errors.New("sentinel is red"))
	}
	if t.root.isred() {
		panic(errors.New("root is red"))
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	t.validatetree(t.root, t.root.isred(), 0 /*blacks*/, 1 /*depth*/, h)

	// in-order length should match the live count.
	if samples := h.Samples(); samples != t.Count() {
		fmsg := "validate(): h_height.samples:%v != Count():%v"
		panicerr(fmsg, samples, t.Count())
	}
	// `h_height`.max should not exceed certain limit.
	if h.Samples() > 8 {
		if entries := t.Count(); float64(h.Max()) > maxheight(entries) {
			fmsg := "validate(): max height %v exceeds log2(%v)"
			panicerr(fmsg, float64(h.Max()), entries)
		}
	}

	t.validatestats()
}

func (t *RBTree) validatetree(
	nd *node, fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks int64) {

	if nd == t.sentinel {
		return blacks
	}
	h.Add(depth)
	if fromred && nd.isred() {
		panic(redafterred)
	}
	if nd.isblack() {
		blacks++
	}

	lblacks := t.validatetree(nd.left, nd.isred(), blacks, depth+1, h)
	rblacks := t.validatetree(nd.right, nd.isred(), blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	if nd.left != t.sentinel {
		if nd.left.parent != nd {
			fmsg := "validate(): dangling parent link at left of %v"
			panicerr(fmsg, nd.item)
		}
		if t.cmp(nd.left.item, nd.item) >= 0 {
			fmsg := "validate(): sort order, left node %v is >= node %v"
			panicerr(fmsg, nd.left.item, nd.item)
		}
	}
	if nd.right != t.sentinel {
		if nd.right.parent != nd {
			fmsg := "validate(): dangling parent link at right of %v"
			panicerr(fmsg, nd.item)
		}
		if t.cmp(nd.right.item, nd.item) <= 0 {
			fmsg := "validate(): sort order, right node %v is <= node %v"
			panicerr(fmsg, nd.right.item, nd.item)
		}
	}
	return lblacks
}
