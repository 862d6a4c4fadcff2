package calc

import (
	"math"
	"math/big"
)

// binary applies a binary operator. col is the operator's position.
func binary(a float64, op Operator, b float64, col int) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, &DivisionError{Col: col, X: a}
		}
		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	default:
		panic("calc: binary on " + op.String())
	}
}

const (
	// maxFactorial is the largest n for which n! is finite as a float64.
	maxFactorial = 170
	// factPrec is enough bits to hold maxFactorial! exactly, so the product
	// is rounded only once.
	factPrec = 1024
)

// factorial computes x! for integral x >= 0.
func factorial(x float64, col int) (float64, error) {
	if x < 0 || x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, &FactorialError{Col: col, X: x}
	}
	if x > maxFactorial {
		return math.Inf(1), nil
	}
	n := int64(x)
	r := new(big.Float).SetPrec(factPrec).SetInt64(1)
	var k big.Float
	k.SetPrec(factPrec)
	for i := int64(2); i <= n; i++ {
		r.Mul(r, k.SetInt64(i))
	}
	f, _ := r.Float64()
	return f, nil
}
