package calc_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/Knetic/govaluate"

	"github.com/zephyrtronium/calc"
)

func TestEvalFlat(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"empty", "", 0},
		{"space", "  \t", 0},
		{"num", "1", 1},
		{"real", "1.5", 1.5},
		{"leading-dot", ".5", 0.5},
		{"add", "2+3", 5},
		{"mixed", "2*3+5", 11},
		{"brackets", "(2+3)*5", 25},
		{"pow", "2^3", 8},
		{"fact", "5!", 120},
		{"prec", "2+3*4", 14},
		{"complex", "(2+3)*4-5", 15},
		{"nested", "((2+3)*4-5)/2", 7.5},
		{"neg-after-op", "2+-3", -1},
		{"neg-start", "-5+3", -2},
		{"neg-bracket", "2-(-3)", 5},
		{"neg-neg", "2--3", 5},
		{"neg-pow", "-2^2", 4},
		{"pow-neg", "2^-1", 0.5},
		{"pow-left", "2^3^2", 64},
		{"sub-left", "10-2-3", 5},
		{"div-left", "8/4/2", 1},
		{"fact-fact", "3!!", 720},
		{"fact-prec", "2*3!", 12},
		{"fact-bracket", "(1+2)!", 6},
		{"fact-pow", "2^3!", 64},
		{"fact-zero", "0!", 1},
		{"many-brackets", "(((1)))", 1},
		{"spaces", " 2 + 3 * 4 ", 14},
		{"spaces-neg", "2 * -3", -6},
		{"spaces-sub", "2 - 3", -1},
		{"pow-sqrt", "4^0.5", 2},
		{"fact-big", "171!", math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvalFlat(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
		tol  float64
	}{
		{"sin", "sin(30)", 0.5, 1e-9},
		{"cos", "cos(60)", 0.5, 1e-9},
		{"tan", "tan(45)", 1, 1e-9},
		{"log", "log(100)", 2, 0},
		{"ln", "ln(2.718)", math.Log(2.718), 1e-12},
		{"sqrt", "sqrt(16)", 4, 0},
		{"abs", "abs(-5)", 5, 0},
		{"add-sin", "2+sin(30)", 2.5, 1e-9},
		{"sqrt-mul", "sqrt(16)*2", 8, 0},
		{"nested", "sqrt(sqrt(16))", 2, 0},
		{"arg-expr", "abs(sqrt(16)-10)", 6, 0},
		{"arg-brackets", "sqrt((1+2)*3)", 3, 0},
		{"two-calls", "sqrt(9)+sqrt(16)", 7, 0},
		{"fact-call", "sqrt(16)!", 24, 0},
		{"neg-call", "-5+abs(-2)", -3, 0},
		{"sub-neg-result", "2-sin(-30)", 2.5, 1e-9},
		{"empty-arg", "cos()", 1, 0},
		{"spaces-in-arg", "sqrt( 16 ) * 2", 8, 0},
		{"plain", "1+1", 2, 0},
		{"empty", "", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if r != c.r && math.Abs(r-c.r) > c.tol {
				t.Errorf("%q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
		// as is a pointer to the concrete error type expected.
		as interface{}
		// col is the expected position, or 0 for errors without one.
		col int
	}{
		{"div-zero", "1/0", calc.ErrDivisionByZero, new(*calc.DivisionError), 2},
		{"div-zero-expr", "1/(2-2)", calc.ErrDivisionByZero, new(*calc.DivisionError), 2},
		{"div-zero-zero", "0/0", calc.ErrDivisionByZero, new(*calc.DivisionError), 2},
		{"fact-neg", "(-1)!", calc.ErrInvalidFactorial, new(*calc.FactorialError), 5},
		{"fact-frac", "2.5!", calc.ErrInvalidFactorial, new(*calc.FactorialError), 4},
		{"log-zero", "log(0)", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"ln-neg", "ln(-1)", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"sqrt-neg", "sqrt(-1)", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"sqrt-neg-expr", "sqrt(-4)+1", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"nested-domain", "sqrt(log(0))", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"arg-div-zero", "sin(1/0)", calc.ErrDivisionByZero, new(*calc.DivisionError), 2},
		{"double-op", "2++3", calc.ErrMalformedExpression, new(*calc.OperandError), 2},
		{"close", "2)", calc.ErrMalformedExpression, new(*calc.BracketError), 2},
		{"open", "(2+3", calc.ErrMalformedExpression, new(*calc.BracketError), 1},
		{"empty-brackets", "()", calc.ErrMalformedExpression, new(*calc.EmptyExpressionError), 3},
		{"implicit-mul", "2(3)", calc.ErrMalformedExpression, new(*calc.OperandError), 5},
		{"two-nums", "2 3", calc.ErrMalformedExpression, new(*calc.OperandError), 4},
		{"lone-op", "+", calc.ErrMalformedExpression, new(*calc.OperandError), 1},
		{"fact-call", "3!(2)", calc.ErrMalformedExpression, new(*calc.OperatorError), 3},
		{"letter", "2a", calc.ErrMalformedExpression, new(*calc.OperatorError), 2},
		{"unknown-func", "asin(30)", calc.ErrMalformedExpression, new(*calc.OperatorError), 1},
		{"unclosed-call", "sqrt(4", calc.ErrMalformedExpression, new(*calc.OperatorError), 1},
		{"dots", "1.2.3", calc.ErrInvalidNumber, new(*calc.NumberError), 1},
		{"dot", ".", calc.ErrInvalidNumber, new(*calc.NumberError), 1},
		{"dangling-sign", "2*-", calc.ErrInvalidNumber, new(*calc.NumberError), 3},
		{"call-digit-after", "sqrt(4)5", calc.ErrMalformedExpression, new(*calc.OperatorError), 1},
		{"call-dot-after", "sqrt(4).5", calc.ErrMalformedExpression, new(*calc.OperatorError), 1},
		{"call-dot-before", "2.sqrt(4)", calc.ErrMalformedExpression, new(*calc.OperatorError), 3},
		{"call-space-before", "2 sin(-30)", calc.ErrMalformedExpression, new(*calc.OperatorError), 3},
		{"call-bracket-before", "(1)sin(-30)", calc.ErrMalformedExpression, new(*calc.OperatorError), 4},
		{"div-before-failed-call", "1/0+log(0)", calc.ErrDivisionByZero, new(*calc.DivisionError), 2},
		{"failed-call-before-div", "log(0)+1/0", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
		{"failed-call-in-sum", "2*3+sqrt(-1)", calc.ErrInvalidDomain, new(*calc.DomainError), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			if err == nil {
				t.Fatalf("%q gave no error, result %g", c.src, r)
			}
			if r != 0 {
				t.Errorf("%q gave partial result %g", c.src, r)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%q: %v is not %v", c.src, err, c.kind)
			}
			if !errors.As(err, c.as) {
				t.Fatalf("%q: wrong error type %#v", c.src, err)
			}
			if c.col == 0 {
				return
			}
			var ie calc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: %#v is not an InputError", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: want error at %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
			}
		})
	}
}

func TestEvalLiteral(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vals := []float64{0, 1, -1, 0.1, -0.1, 3.25, 1e-7, 123456789.125, math.MaxInt32}
	for i := 0; i < 200; i++ {
		vals = append(vals, (rng.Float64()-0.5)*math.Pow(10, float64(rng.Intn(20)-10)))
	}
	for _, v := range vals {
		src := strconv.FormatFloat(v, 'f', -1, 64)
		r, err := calc.Eval(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if math.Abs(r-v) > 1e-9 {
			t.Errorf("%q: got %g", src, r)
		}
	}
}

func TestEvalArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	num := func() float64 {
		return math.Round((rng.Float64()-0.5)*2000) / 8
	}
	str := func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	for i := 0; i < 200; i++ {
		a, b, c := num(), num(), num()
		cases := []struct {
			src string
			r   float64
		}{
			{str(a) + "+" + str(b), a + b},
			{str(a) + "-" + str(b), a - b},
			{str(a) + "*" + str(b) + "+" + str(c), a*b + c},
			{"(" + str(a) + "+" + str(b) + ")*" + str(c), (a + b) * c},
			{str(a) + "+" + str(b) + "*" + str(c), a + b*c},
		}
		for _, k := range cases {
			r, err := calc.Eval(k.src)
			if err != nil {
				t.Errorf("%q: %v", k.src, err)
				continue
			}
			if math.Abs(r-k.r) > 1e-9 {
				t.Errorf("%q: want %g, got %g", k.src, k.r, r)
			}
		}
	}
}

// TestEvalGovaluate checks results against an independent evaluator.
func TestEvalGovaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	num := func() string {
		return strconv.FormatFloat(float64(rng.Intn(10000)+1)/100, 'f', -1, 64)
	}
	forms := []func(a, b, c string) string{
		func(a, b, c string) string { return a + "+" + b },
		func(a, b, c string) string { return a + "*" + b + "+" + c },
		func(a, b, c string) string { return "(" + a + "+" + b + ")*" + c },
		func(a, b, c string) string { return a + "-" + b + "/" + c },
		func(a, b, c string) string { return a + "*(" + b + "-" + c + ")" },
		func(a, b, c string) string { return "((" + a + "-" + b + ")*" + c + ")/" + a },
	}
	for i := 0; i < 100; i++ {
		a, b, c := num(), num(), num()
		for _, form := range forms {
			src := form(a, b, c)
			ex, err := govaluate.NewEvaluableExpression(src)
			if err != nil {
				t.Fatalf("govaluate couldn't parse %q: %v", src, err)
			}
			w, err := ex.Evaluate(nil)
			if err != nil {
				t.Fatalf("govaluate couldn't evaluate %q: %v", src, err)
			}
			want := w.(float64)
			r, err := calc.Eval(src)
			if err != nil {
				t.Errorf("%q: %v", src, err)
				continue
			}
			if math.Abs(r-want) > 1e-9*math.Max(1, math.Abs(want)) {
				t.Errorf("%q: govaluate gives %g, got %g", src, want, r)
			}
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	srcs := []string{"2+sin(30)", "sqrt(16)*2", "5!", "log(0)", "(2+3"}
	want := make([]float64, len(srcs))
	for i, src := range srcs {
		want[i], _ = calc.Eval(src)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				for i, src := range srcs {
					if r, _ := calc.Eval(src); r != want[i] {
						t.Errorf("%q: want %g, got %g", src, want[i], r)
					}
				}
			}
		}()
	}
	wg.Wait()
}
