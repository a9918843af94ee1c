// Command tinystl-demo walks through the containers of this module: array,
// vector, list and deque. It prints each structure's state after a handful
// of operations and can dump the deque's block layout in Graphviz DOT
// format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	tinystl "github.com/zhanghaoxvan/tinystl"
	"github.com/zhanghaoxvan/tinystl/array"
	"github.com/zhanghaoxvan/tinystl/list"
	"github.com/zhanghaoxvan/tinystl/vector"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgYellow)
	errcol  = color.New(color.FgRed)
)

func main() {
	blockCap := flag.Int("blockcap", 4, "deque block capacity")
	dot := flag.Bool("dot", false, "dump the deque in Graphviz DOT format")
	flag.Parse()

	arr := demoArray()
	demoVector(arr)
	demoList(arr)
	demoDeque(arr, *blockCap, *dot)
}

func demoArray() array.Array[int] {
	heading.Println("array")
	arr := array.New[int](10)
	for i := range arr.Len() {
		if err := arr.Set(i, i); err != nil {
			fail(err)
		}
	}
	printState("size", arr.Len())
	printElements(arr.ToSlice())
	return arr
}

func demoVector(arr array.Array[int]) {
	heading.Println("vector")
	vec, err := vector.FromSlice(nil, arr.ToSlice())
	if err != nil {
		fail(err)
	}
	printState("size", vec.Len(), "capacity", vec.Cap())
	printElements(vec.ToSlice())

	label.Println("push back 10")
	if err := vec.PushBack(10); err != nil {
		fail(err)
	}
	label.Println("insert -1 at the front")
	if err := vec.Insert(0, -1); err != nil {
		fail(err)
	}
	printState("size", vec.Len(), "capacity", vec.Cap())
	printElements(vec.ToSlice())
}

func demoList(arr array.Array[int]) {
	heading.Println("list")
	lst, err := list.FromSlice[int](nil, arr.ToSlice())
	if err != nil {
		fail(err)
	}
	printState("size", lst.Len())
	var parts []string
	for e := lst.Front(); e != nil; e = e.Next() {
		parts = append(parts, fmt.Sprint(e.Value))
	}
	fmt.Println(strings.Join(parts, " --> "))
}

func demoDeque(arr array.Array[int], blockCap int, dot bool) {
	heading.Println("deque")
	deq, err := tinystl.FromSlice(tinystl.Config[int]{BlockCapacity: blockCap}, arr.ToSlice())
	if err != nil {
		fail(err)
	}
	printState("size", deq.Len())
	printElements(deq.ToSlice())

	label.Println("push back 10")
	if err := deq.PushBack(10); err != nil {
		fail(err)
	}
	label.Println("push front -1")
	if err := deq.PushFront(-1); err != nil {
		fail(err)
	}
	printState("size", deq.Len())
	printElements(deq.ToSlice())

	front, _ := deq.Front()
	back, _ := deq.Back()
	printState("front", front, "back", back)

	if dot {
		heading.Println("deque block layout (DOT)")
		tinystl.Deque2Dot(deq, os.Stdout)
	}
}

// printState prints label/value pairs on one line.
func printState(pairs ...any) {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, fmt.Sprintf("%v: %v", pairs[i], pairs[i+1]))
	}
	fmt.Println(strings.Join(parts, ", "))
}

// printElements lists elements, wrapped to the terminal width when stdout
// is interactive.
func printElements(xs []int) {
	width := lineWidth()
	col := 0
	for i, x := range xs {
		s := fmt.Sprint(x)
		if i > 0 {
			if col+1+len(s) > width {
				fmt.Println()
				col = 0
			} else {
				fmt.Print(" ")
				col++
			}
		}
		fmt.Print(s)
		col += len(s)
	}
	fmt.Println()
}

func lineWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 65
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 65
	}
	return w
}

func fail(err error) {
	errcol.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
