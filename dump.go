package tinystl

import (
	"fmt"
	"io"
	"strings"
)

// Deque2Dot outputs the internal structure of a Deque in Graphviz DOT format
// (for debugging purposes).
//
// The map is drawn as one record node with a port per handle slot; every
// occupied block is drawn as a record of its element slots, live slots
// carrying the element's %v rendering.
func Deque2Dot[T any](d *Deque[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=TB;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	if d == nil || d.m == nil {
		io.WriteString(w, "\t\"empty\" [label=\"(uninitialized deque)\"];\n")
		io.WriteString(w, "}\n")
		return
	}
	var ports []string
	for i := range d.m.slots {
		mark := ""
		if i == d.begin.node {
			mark = "begin "
		}
		if i == d.end.node {
			mark += "end "
		}
		ports = append(ports, fmt.Sprintf("<s%d> %s[%d]", i, mark, i))
	}
	if _, err := fmt.Fprintf(w, "\t\"map\" [label=\"%s\"];\n", strings.Join(ports, "|")); err != nil {
		tracer().Errorf("deque DOT: %s", err.Error())
		return
	}
	for node := d.begin.node; node <= d.end.node; node++ {
		var cells []string
		for i := range d.cfg.BlockCapacity {
			if d.slotLive(node, i) {
				cells = append(cells, fmt.Sprintf("%v", d.m.slots[node][i]))
			} else {
				cells = append(cells, "·")
			}
		}
		fmt.Fprintf(w, "\t\"block%d\" [label=\"%s\"];\n", node, strings.Join(cells, "|"))
		fmt.Fprintf(w, "\t\"map\":s%d -> \"block%d\";\n", node, node)
	}
	io.WriteString(w, "}\n")
}

// slotLive reports whether (node, i) lies in the occupied range [begin, end).
func (d *Deque[T]) slotLive(node, i int) bool {
	p := position{node: node, cur: i}
	return !before(p, d.begin) && before(p, d.end)
}
