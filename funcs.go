package calc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals. It returns an error if x is outside
// its domain.
type Func func(x float64) (float64, error)

// funcNames is the names of the functions that can be called in expressions,
// in the order they are expanded.
var funcNames = [...]string{"sin", "cos", "tan", "log", "ln", "sqrt", "abs"}

var globalfuncs = map[string]Func{
	"sin":  degrees(math.Sin),
	"cos":  degrees(math.Cos),
	"tan":  degrees(math.Tan),
	"log":  positive("log", log10),
	"ln":   positive("ln", ln),
	"sqrt": sqrt,
	"abs":  total(math.Abs),
}

// call applies the named function to x.
func call(name string, x float64) (float64, error) {
	f := globalfuncs[name]
	if f == nil {
		return 0, &FuncError{Name: name}
	}
	return f(x)
}

// degrees wraps a trigonometric function so that it takes degrees.
func degrees(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x * math.Pi / 180), nil
	}
}

// positive wraps a function defined only for x > 0.
func positive(name string, f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		if !(x > 0) {
			return 0, &DomainError{X: x, Func: name}
		}
		return f(x), nil
	}
}

func total(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{X: x, Func: "sqrt"}
	}
	return math.Sqrt(x), nil
}

// logPrec is the precision of logarithms before they are rounded to float64.
// It is high enough that exact results like log(1000) round to exact values.
const logPrec = 128

// biglog computes the natural logarithm of finite x > 0 to logPrec bits.
func biglog(x float64) *big.Float {
	in := new(big.Float).SetPrec(logPrec).SetFloat64(x)
	out := new(big.Float).SetPrec(logPrec)
	bigfloat.Log(out, in)
	return out
}

func ln(x float64) float64 {
	if math.IsInf(x, 1) {
		return x
	}
	r, _ := biglog(x).Float64()
	return r
}

func log10(x float64) float64 {
	if math.IsInf(x, 1) {
		return x
	}
	r := biglog(x)
	r.Quo(r, biglog(10))
	f, _ := r.Float64()
	return f
}
