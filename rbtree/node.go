package rbtree

import "fmt"
import "io"
import "strings"

const (
	colorred   = byte(0)
	colorblack = byte(1)
)

// node record linking one indexed item into the tree. left, right
// and parent always point to a real node or to the tree's sentinel,
// never to golang nil. The tree owns the subtree rooted at each
// node; parent links are rotation/fixup bookkeeping only.
type node struct {
	item   interface{}
	color  byte
	left   *node
	right  *node
	parent *node
}

func (nd *node) isred() bool {
	return nd.color == colorred
}

func (nd *node) isblack() bool {
	return nd.color == colorblack
}

func (nd *node) setred() *node {
	nd.color = colorred
	return nd
}

func (nd *node) setblack() *node {
	nd.color = colorblack
	return nd
}

func (nd *node) setcolor(color byte) *node {
	nd.color = color
	return nd
}

func (nd *node) repr() string {
	if nd.isred() {
		return fmt.Sprintf("{%v,red}", nd.item)
	}
	return fmt.Sprintf("{%v,black}", nd.item)
}

func (nd *node) dotdump(buffer io.Writer, sentinel *node) {
	if nd == sentinel {
		return
	}

	whatcolor := func(childnd *node) string {
		if childnd.isred() {
			return "red"
		}
		return "black"
	}

	key := fmt.Sprintf("%v", nd.item)
	lines := []string{
		fmt.Sprintf("  %s [label=\"{%s}\"];\n", key, key),
	}
	fmsg := "  %s -> %s [color=%v];\n"
	if nd.left != sentinel {
		line := fmt.Sprintf(fmsg, key, nd.left.item, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != sentinel {
		line := fmt.Sprintf(fmsg, key, nd.right.item, whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer, sentinel)
	nd.right.dotdump(buffer, sentinel)
}
