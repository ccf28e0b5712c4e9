package rbtree

import "fmt"
import "io"
import "strings"
import "sync/atomic"
import "time"

import "github.com/VladimirBangPow/rbstore/api"
import "github.com/VladimirBangPow/rbstore/lib"
import s "github.com/bnclabs/gosettings"

// RBTree manage a single instance of in-memory sorted index using
// a red-black tree over an application supplied total order. Every
// leaf position, and the parent of the root, is the tree's always
// black sentinel node, there are no golang nil links inside the
// tree.
type RBTree struct {
	// 64-bit aligned statistics, n_count can be read concurrently.
	n_count   int64 // number of items indexed
	n_inserts int64
	n_deletes int64
	n_dups    int64 // inserts rejected as duplicates
	n_misses  int64 // lookups and deletes that found no key
	n_lookups int64
	n_ranges  int64
	n_frees   int64
	n_maxed   int64 // inserts rejected at capacity

	name     string
	cmp      api.CompareFunc
	free     api.FreeFunc
	root     *node
	sentinel *node
	borntime time.Time
	dead     bool

	h_insertdepth *lib.HistogramInt64

	// settings
	entrysize int64
	capacity  int64
	setts     s.Settings
	logprefix string
}

// NewRBTree create a new instance of in-memory sorted index. cmp
// defines the total order over indexed items and shall not be nil.
// free, if not nil, is invoked exactly once for every item that
// leaves the index, either via delete or via Destroy. Neither
// callback shall re-enter or mutate the tree.
func NewRBTree(
	name string, cmp api.CompareFunc,
	free api.FreeFunc, setts s.Settings) *RBTree {

	if cmp == nil {
		panic("NewRBTree(): compare function is nil")
	}
	t := &RBTree{name: name, cmp: cmp, free: free, borntime: time.Now()}
	t.logprefix = fmt.Sprintf("RBT [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	// the shared sentinel stands in for every external leaf and for
	// the parent of the root, it shall remain black for ever.
	t.sentinel = &node{color: colorblack}
	t.sentinel.left, t.sentinel.right = t.sentinel, t.sentinel
	t.sentinel.parent = t.sentinel
	t.root = t.sentinel

	// statistics
	t.h_insertdepth = lib.NewhistorgramInt64(1, 256, 4)

	infof("%v started ...\n", t.logprefix)
	t.logcapacity()
	return t
}

//---- Maintanence APIs.

// ID return index instance name.
func (t *RBTree) ID() string {
	return t.name
}

// Count return the number of items indexed.
func (t *RBTree) Count() int64 {
	return atomic.LoadInt64(&t.n_count)
}

// Isactive return false after the tree is destroyed.
func (t *RBTree) Isactive() bool {
	return t.dead == false
}

// Destroy release the index and all items held by it, invoking the
// FreeFunc, if supplied, once per live item in a post-order walk.
// Safe to call on an empty tree.
func (t *RBTree) Destroy() {
	if t.dead {
		panic("Destroy(): already dead tree")
	}
	t.destroytree(t.root)
	t.root, t.sentinel = nil, nil
	t.setts = nil
	t.dead = true
	atomic.StoreInt64(&t.n_count, 0)
	infof("%v destroyed\n", t.logprefix)
}

func (t *RBTree) destroytree(nd *node) {
	if nd == t.sentinel {
		return
	}
	t.destroytree(nd.left)
	t.destroytree(nd.right)
	t.freenode(nd)
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (t *RBTree) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph rbtree {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	t.root.dotdump(buffer, t.sentinel)
	buffer.Write([]byte(lines[len(lines)-1]))
}

//---- RBTree read operations.

// Has return whether key is indexed.
func (t *RBTree) Has(key interface{}) bool {
	_, ok := t.Get(key)
	return ok
}

// Get lookup item matching key under the tree's total order.
// Return the indexed item, or ok as false if key is missing.
func (t *RBTree) Get(key interface{}) (item interface{}, ok bool) {
	t.n_lookups++
	if nd := t.getnode(key); nd != nil {
		return nd.item, true
	}
	t.n_misses++
	return nil, false
}

// Min return the smallest indexed item under the tree's total
// order, or ok as false if the tree is empty.
func (t *RBTree) Min() (item interface{}, ok bool) {
	t.n_lookups++
	if t.root == t.sentinel {
		t.n_misses++
		return nil, false
	}
	return t.minnode(t.root).item, true
}

// Max return the largest indexed item under the tree's total
// order, or ok as false if the tree is empty.
func (t *RBTree) Max() (item interface{}, ok bool) {
	t.n_lookups++
	if t.root == t.sentinel {
		t.n_misses++
		return nil, false
	}
	return t.maxnode(t.root).item, true
}

func (t *RBTree) getnode(key interface{}) *node {
	nd := t.root
	for nd != t.sentinel {
		cmp := t.cmp(key, nd.item)
		if cmp == 0 {
			return nd
		} else if cmp < 0 {
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return nil // key is not present in the tree
}

func (t *RBTree) minnode(nd *node) *node {
	for nd.left != t.sentinel {
		nd = nd.left
	}
	return nd
}

func (t *RBTree) maxnode(nd *node) *node {
	for nd.right != t.sentinel {
		nd = nd.right
	}
	return nd
}

//---- RBTree write operations.

// Insert index a new item. If an item equal under the compare
// function is already present, the index is left untouched and
// api.ErrorItemPresent is returned. If the index is at capacity,
// api.ErrorOutofMemory is returned. Either way a failed insert
// mutates nothing.
func (t *RBTree) Insert(item interface{}) error {
	parent, depth := t.sentinel, int64(1)
	nd, lastcmp := t.root, 0
	for nd != t.sentinel {
		parent = nd
		lastcmp = t.cmp(item, nd.item)
		if lastcmp == 0 {
			t.n_dups++
			return api.ErrorItemPresent
		} else if lastcmp < 0 {
			nd = nd.left
		} else {
			nd = nd.right
		}
		depth++
	}
	if atomic.LoadInt64(&t.n_count) >= t.capacity {
		t.n_maxed++
		errorf("%v insert beyond capacity %v\n", t.logprefix, t.capacity)
		return api.ErrorOutofMemory
	}

	newnd := t.newnode(item)
	newnd.parent = parent
	if parent == t.sentinel {
		t.root = newnd
	} else if lastcmp < 0 {
		parent.left = newnd
	} else {
		parent.right = newnd
	}
	t.insertfixup(newnd)
	t.root.setblack()

	t.h_insertdepth.Add(depth)
	atomic.AddInt64(&t.n_count, 1)
	t.n_inserts++
	return nil
}

// restore the no-red-red invariant after linking a red node `nd`,
// walking the red violation upward. Uniform black counts are
// preserved by every step.
func (t *RBTree) insertfixup(nd *node) {
	for nd.parent.isred() {
		if nd.parent == nd.parent.parent.left {
			uncle := nd.parent.parent.right
			if uncle.isred() { // push the violation to grandparent
				nd.parent.setblack()
				uncle.setblack()
				nd.parent.parent.setred()
				nd = nd.parent.parent
			} else {
				if nd == nd.parent.right { // straighten zig-zag shape
					nd = nd.parent
					t.rotateleft(nd)
				}
				nd.parent.setblack()
				nd.parent.parent.setred()
				t.rotateright(nd.parent.parent)
			}
		} else {
			uncle := nd.parent.parent.left
			if uncle.isred() {
				nd.parent.setblack()
				uncle.setblack()
				nd.parent.parent.setred()
				nd = nd.parent.parent
			} else {
				if nd == nd.parent.left {
					nd = nd.parent
					t.rotateright(nd)
				}
				nd.parent.setblack()
				nd.parent.parent.setred()
				t.rotateleft(nd.parent.parent)
			}
		}
	}
}

// Delete remove the item matching key. If key is missing the index
// is left untouched and api.ErrorKeyMissing is returned. FreeFunc,
// if supplied, is invoked on the removed item.
func (t *RBTree) Delete(key interface{}) error {
	nd := t.getnode(key)
	if nd == nil {
		t.n_misses++
		return api.ErrorKeyMissing
	}
	t.deletenode(nd)
	return nil
}

// DeleteMin remove the smallest indexed item. Return
// api.ErrorKeyMissing on an empty tree.
func (t *RBTree) DeleteMin() error {
	if t.root == t.sentinel {
		t.n_misses++
		return api.ErrorKeyMissing
	}
	t.deletenode(t.minnode(t.root))
	return nil
}

// DeleteMax remove the largest indexed item. Return
// api.ErrorKeyMissing on an empty tree.
func (t *RBTree) DeleteMax() error {
	if t.root == t.sentinel {
		t.n_misses++
		return api.ErrorKeyMissing
	}
	t.deletenode(t.maxnode(t.root))
	return nil
}

// unlink node z. When z has two children its in-order successor y
// is physically relinked into z's structural position taking over
// z's color, so node identity stays stable. The color erased from
// the structure is y's original color, captured before the
// transplant, a black erasure shortens some path and drives the
// fixup.
func (t *RBTree) deletenode(z *node) {
	y, ycolor := z, z.color
	var x *node
	if z.left == t.sentinel {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.sentinel {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minnode(z.right)
		ycolor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y // x can be the sentinel
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.setcolor(z.color)
	}
	if ycolor == colorblack {
		t.deletefixup(x)
	}
	t.freenode(z)
	atomic.AddInt64(&t.n_count, -1)
	t.n_deletes++
}

// replace the subtree rooted at u with the subtree rooted at v,
// repairing the parent linkage. v can be the sentinel, its parent
// field is scratch space for the fixup that follows.
func (t *RBTree) transplant(u, v *node) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// x carries an extra black deficiency, push it up or resolve it
// against a sibling, four cases plus mirrors.
func (t *RBTree) deletefixup(x *node) {
	for x != t.root && x.isblack() {
		if x == x.parent.left {
			w := x.parent.right
			if w.isred() { // case 1, make the sibling black
				w.setblack()
				x.parent.setred()
				t.rotateleft(x.parent)
				w = x.parent.right
			}
			if w.left.isblack() && w.right.isblack() {
				w.setred() // case 2, push deficiency to the parent
				x = x.parent
			} else {
				if w.right.isblack() { // case 3, point a red at far side
					w.left.setblack()
					w.setred()
					t.rotateright(w)
					w = x.parent.right
				}
				w.setcolor(x.parent.color) // case 4, terminal
				x.parent.setblack()
				w.right.setblack()
				t.rotateleft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.isred() {
				w.setblack()
				x.parent.setred()
				t.rotateright(x.parent)
				w = x.parent.left
			}
			if w.right.isblack() && w.left.isblack() {
				w.setred()
				x = x.parent
			} else {
				if w.left.isblack() {
					w.right.setblack()
					w.setred()
					t.rotateleft(w)
					w = x.parent.left
				}
				w.setcolor(x.parent.color)
				x.parent.setblack()
				w.left.setblack()
				t.rotateright(x.parent)
				x = t.root
			}
		}
	}
	x.setblack()
}

//---- rotation primitives, preserve the in-order sequence exactly.

func (t *RBTree) rotateleft(x *node) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *RBTree) rotateright(y *node) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.sentinel {
		t.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}

//---- local functions

func (t *RBTree) newnode(item interface{}) *node {
	nd := &node{item: item, color: colorred}
	nd.left, nd.right, nd.parent = t.sentinel, t.sentinel, t.sentinel
	return nd
}

func (t *RBTree) freenode(nd *node) {
	if t.free != nil {
		t.free(nd.item)
	}
	nd.item = nil
	nd.left, nd.right, nd.parent = nil, nil, nil
	t.n_frees++
}
