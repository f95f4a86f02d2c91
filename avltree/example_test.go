package avltree_test

import (
	"fmt"

	"github.com/velmaran/strukt/avltree"
)

// ExampleTree demonstrates the self-balancing behavior: ascending inserts
// that would chain a plain BST stay logarithmic here.
func ExampleTree() {
	// 1) Seed with the classic right-right trigger:
	t := avltree.New(10, 20, 30)

	// 2) One left rotation has already fired; 20 is the root:
	fmt.Println("in-order: ", t.InOrder())
	fmt.Println("pre-order:", t.PreOrder())
	fmt.Println("height:   ", t.Height())

	// Output:
	// in-order:  [10 20 30]
	// pre-order: [20 10 30]
	// height:    2
}

// ExampleTree_Remove shows two-child deletion via the in-order successor.
func ExampleTree_Remove() {
	t := avltree.New(50, 30, 70, 20, 40, 60, 80)

	// 70 has two children; its successor 80 takes over its slot.
	t.Remove(70)

	fmt.Println(t.InOrder())
	fmt.Println(t.Len())
	// Output:
	// [20 30 40 50 60 80]
	// 6
}

// ExampleTree_Min shows the empty-tree error contract.
func ExampleTree_Min() {
	t := avltree.New[int]()

	if _, err := t.Min(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// avltree: tree is empty
}

// ExampleNewFunc orders a struct type by a custom comparison.
func ExampleNewFunc() {
	type account struct {
		id      int
		balance int
	}
	t := avltree.NewFunc(func(a, b account) int { return a.id - b.id })

	t.Insert(account{id: 2, balance: 100})
	t.Insert(account{id: 1, balance: 250})

	t.Walk(func(a account) bool {
		fmt.Printf("#%d: %d\n", a.id, a.balance)
		return true
	})
	// Output:
	// #1: 250
	// #2: 100
}
