package rbtree

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbtree instance.
//
// "entrysize" (int64, default: 64),
//		Estimated in-memory footprint of a single indexed item,
//		in bytes. Used to derive "capacity" when capacity is left
//		as ZERO.
//
// "capacity" (int64, default: freeRAM / entrysize),
//		Maximum number of live entries allowed in the index.
//		Insert operations beyond this fail with
//		api.ErrorOutofMemory, leaving the index untouched.
//
func Defaultsettings() s.Settings {
	setts := s.Settings{
		"entrysize": int64(64),
		"capacity":  int64(0),
	}
	return setts
}

func (t *RBTree) readsettings(setts s.Settings) {
	t.entrysize = setts.Int64("entrysize")
	t.capacity = setts.Int64("capacity")
	if t.entrysize <= 0 {
		panicerr("entrysize %v settings", t.entrysize)
	}
	if t.capacity == 0 {
		_, _, free := getsysmem()
		t.capacity = int64(free) / t.entrysize
	}
	if t.capacity <= 0 {
		panicerr("capacity %v settings", t.capacity)
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
