package soavec_test

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/soavec"
)

func ExampleVec2() {
	positions := soavec.NewVec2[float64, float64]()
	positions.Push(1.0, 2.0)
	positions.Push(3.0, 4.0)
	positions.Push(5.0, 6.0)

	xs, ys := positions.Columns()
	fmt.Println(xs)
	fmt.Println(ys)
	// Output:
	// [1 3 5]
	// [2 4 6]
}

func ExampleVec2_SortFunc() {
	v := soavec.NewVec2[int, string]()
	v.Push(3, "three")
	v.Push(1, "one")
	v.Push(2, "two")

	v.SortFunc(func(a, b soavec.Ref2[int, string]) int {
		return cmp.Compare(*a.V1, *b.V1)
	})

	for _, r := range v.All() {
		fmt.Println(*r.V1, *r.V2)
	}
	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleVec2_Drain() {
	v := soavec.NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	for r := range v.Drain().All() {
		fmt.Println(r.V1, r.V2)
	}
	fmt.Println("len:", v.Len())
	// Output:
	// 1 a
	// 2 b
	// len: 0
}

func ExampleVec3_Slice() {
	v := soavec.NewVec3[int, float32, float32]()
	v.Push(1, 0.1, 0.2)
	v.Push(2, 0.3, 0.4)
	v.Push(3, 0.5, 0.6)
	v.Push(4, 0.7, 0.8)

	mid := v.Slice(1, 3)
	ids, _, _ := mid.Columns()
	fmt.Println(ids)
	// Output:
	// [2 3]
}
