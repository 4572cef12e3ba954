package view_test

import (
	"fmt"

	"github.com/ndview/ndview/view"
)

func ExampleBind() {
	a := [2][3]int{}
	v := view.Bind[int](&a)
	v.Fill(7)
	v.Set(0, 1, 2)
	fmt.Println(a)
	// Output: [[7 7 7] [7 7 0]]
}

func ExampleAssign() {
	b := [2][2]bool{{true, true}, {true, true}}
	// A partial literal zero-fills the elements it leaves out.
	view.Assign(view.Bind[bool](&b), [2][2]bool{{true}})
	fmt.Println(b)
	// Output: [[true false] [false false]]
}

func ExampleView_Rows() {
	a := [3][2]int{{1, 2}, {3, 4}, {5, 6}}
	for i, row := range view.BindConst[int](&a).Rows() {
		fmt.Println(i, row)
	}
	// Output:
	// 0 [1 2]
	// 1 [3 4]
	// 2 [5 6]
}

func ExampleView_Window() {
	var rows [4][2]int
	v := view.Bind[int](&rows)
	for i := 0; i <= 2; i++ {
		w, _ := v.Window(i*2, view.Shape{2, 2})
		w.Fill(i)
	}
	fmt.Println(rows)
	// Output: [[0 0] [1 1] [2 2] [2 2]]
}
