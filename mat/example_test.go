package mat_test

import (
	"fmt"

	"github.com/helmgren/tessel/mat"
)

// ExampleMatrix_Add demonstrates the immutable algebra: operands stay
// untouched, the sum is a fresh value.
func ExampleMatrix_Add() {
	a, _ := mat.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := mat.Identity(2)

	sum, _ := a.Add(b)
	fmt.Print(sum)
	// Output:
	// [2 2]
	// [3 5]
}

// ExampleMatrix_Set shows the copy-on-write element update: an explicit
// O(rows·cols) operation returning a new matrix.
func ExampleMatrix_Set() {
	a, _ := mat.Zeros(2, 2)
	b, _ := a.Set(0, 1, 7)

	fmt.Print(a)
	fmt.Print(b)
	// Output:
	// [0 0]
	// [0 0]
	// [0 7]
	// [0 0]
}

// ExampleVector_Reduce folds a vector into its sum.
func ExampleVector_Reduce() {
	v := mat.NewVector([]float64{1, 2, 3, 4})
	sum := v.Reduce(0, func(acc, x float64) float64 { return acc + x })
	fmt.Println(sum)
	// Output:
	// 10
}
