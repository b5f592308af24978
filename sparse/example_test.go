// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/orthosparse/sparse"
)

func ExampleMatrix_Print() {
	m, _ := sparse.New(2, 3)
	_ = m.Insert(1, 3, 4)
	_ = m.Insert(2, 1, 2.5)
	_ = m.Print(os.Stdout)
	// Output:
	// 0 0 4
	// 2.5 0 0
}

func ExampleMatrix_Begin() {
	m, _ := sparse.New(3, 3)
	_ = m.Insert(3, 1, 7)
	_ = m.Insert(1, 2, 5)
	for c := m.Begin(); c.Valid(); c.Next() {
		cell, _ := c.Cell()
		fmt.Println(cell)
	}
	// Output:
	// (1,2)=5
	// (3,1)=7
}

func ExampleMultiply() {
	a, _ := sparse.FromRows([][]float64{{1, 2}})
	b, _ := sparse.FromRows([][]float64{{3}, {4}})
	p, _ := sparse.Multiply(a, b)
	v, _ := p.Get(1, 1)
	fmt.Println(v)
	// Output: 11
}
