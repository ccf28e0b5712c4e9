package rbtree

import "fmt"
import "math"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// height of the tree cannot exceed a certain limit. For example if
// the tree holds 1-million entries, a fully balanced tree shall have
// a height of 20 levels. maxheight provide some breathing space on
// top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}
