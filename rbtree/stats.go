package rbtree

import "github.com/VladimirBangPow/rbstore/lib"

import humanize "github.com/dustin/go-humanize"

// Stats return a map of data-structure statistics and operation
// counts.
func (t *RBTree) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":   t.Count(),
		"n_inserts": t.n_inserts,
		"n_deletes": t.n_deletes,
		"n_dups":    t.n_dups,
		"n_misses":  t.n_misses,
		"n_lookups": t.n_lookups,
		"n_ranges":  t.n_ranges,
		"n_frees":   t.n_frees,
		"n_maxed":   t.n_maxed,
		"capacity":  t.capacity,
		"entrysize": t.entrysize,
	}
	stats["h_insertdepth"] = t.h_insertdepth.Fullstats()
	return stats
}

// Fullstats includes Stats() and walks the entire tree to gather,
// height histogram and black count along the left spine. Expensive
// call.
func (t *RBTree) Fullstats() map[string]interface{} {
	stats := t.Stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	t.heightstats(t.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = t.countblacks()
	return stats
}

func (t *RBTree) heightstats(nd *node, depth int64, h *lib.HistogramInt64) {
	if nd == t.sentinel {
		return
	}
	h.Add(depth)
	t.heightstats(nd.left, depth+1, h)
	t.heightstats(nd.right, depth+1, h)
}

// black count on any root-to-leaf path, the left spine is as good
// as any other once the tree validates.
func (t *RBTree) countblacks() (blacks int64) {
	for nd := t.root; nd != t.sentinel; nd = nd.left {
		if nd.isblack() {
			blacks++
		}
	}
	return blacks
}

// Log a summary of settings, counts and health statistics.
func (t *RBTree) Log() {
	fmsg := "%v count %v {inserts:%v deletes:%v dups:%v misses:%v frees:%v}\n"
	infof(
		fmsg, t.logprefix, t.Count(), t.n_inserts, t.n_deletes,
		t.n_dups, t.n_misses, t.n_frees)
	infof("%v insertdepth %v\n", t.logprefix, t.h_insertdepth.Logstring())
	t.logcapacity()
}

func (t *RBTree) logcapacity() {
	cp := humanize.Bytes(uint64(t.capacity * t.entrysize))
	fmsg := "%v capacity %v entries of ~%v each, budget %v\n"
	infof(fmsg, t.logprefix, t.capacity, t.entrysize, cp)
}

func (t *RBTree) validatestats() {
	// n_count should match (n_inserts - n_deletes)
	n_count := t.Count()
	n_inserts, n_deletes := t.n_inserts, t.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panicerr(fmsg, n_count, n_inserts, n_deletes)
	}
	// every delete shall have freed exactly one node
	if n_frees := t.n_frees; n_frees != n_deletes {
		fmsg := "validatestats(): n_frees:%v != n_deletes:%v"
		panicerr(fmsg, n_frees, n_deletes)
	}
}
