// Package matmul exposes internal Strassen steps for white-box tests:
// padding, trimming and power-of-two sizing are independently testable.
package matmul

var (
	NextPow2  = nextPow2
	PadToPow2 = padToPow2
	Trim      = trim
)
