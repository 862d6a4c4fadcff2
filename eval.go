package calc

import (
	"strings"
	"unicode/utf8"
)

// Eval evaluates an expression, expanding function calls first. The result
// does not depend on any state outside the call, so Eval is safe to use
// concurrently.
//
// If a function call could not be expanded, e.g. log(0), and the remaining
// expression fails to evaluate at that call, the error is the one from the
// function call. Errors elsewhere in the expression are reported as they are,
// so 1/0+log(0) is a division by zero.
func Eval(expr string) (float64, error) {
	return newExpander().eval(expr)
}

// EvalFlat evaluates an expression containing only numbers, operators, and
// brackets. Whitespace between tokens is ignored. An empty expression
// evaluates to 0.
func EvalFlat(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, nil
	}
	m := machine{
		expr: expr,
		vals: newOperands(),
		ops:  newOperators(),
	}
	return m.run()
}

// machine is the state of an operator precedence evaluation.
type machine struct {
	expr string
	vals operands
	ops  operators
}

func (m *machine) run() (float64, error) {
	i := 0
	for {
		for i < len(m.expr) && isSpace(m.expr[i]) {
			i++
		}
		if startsNumber(m.expr, i) {
			v, next, err := scanNumber(m.expr, i)
			if err != nil {
				return 0, err
			}
			m.vals.push(v)
			i = next
			continue
		}
		if i >= len(m.expr) {
			break
		}
		op := charOperator(m.expr[i])
		if op == OpEnd {
			// Anything that isn't an operator ends the expression, but only
			// the actual end may do so.
			r, _ := utf8.DecodeRuneInString(m.expr[i:])
			return 0, &OperatorError{Col: col(m.expr, i), Operator: string(r)}
		}
		top := m.ops.top()
		switch priority(top.op, op) {
		case Lower:
			m.ops.push(pending{op: op, col: col(m.expr, i)})
			i++
		case Equal:
			m.ops.pop()
			i++
		case Higher:
			// Don't advance; the same operator is compared against the new top.
			if err := m.reduce(); err != nil {
				return 0, err
			}
		default:
			return 0, invalid(top, op, col(m.expr, i))
		}
	}
	for m.ops.top().op != OpEnd {
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}
	switch m.vals.len() {
	case 0:
		return 0, &EmptyExpressionError{Col: col(m.expr, len(m.expr))}
	case 1:
		return m.vals.pop(), nil
	default:
		return 0, &OperandError{Col: col(m.expr, len(m.expr))}
	}
}

// reduce pops the top operator and applies it to the operands it needs.
func (m *machine) reduce() error {
	p := m.ops.pop()
	if p.op == OpLeft {
		return &BracketError{Col: p.col, Left: p.op.String()}
	}
	n := p.op.arity()
	if n == 0 {
		panic("calc: reduce on " + p.op.String())
	}
	if m.vals.len() < n {
		return &OperandError{Col: p.col, Operator: p.op.String()}
	}
	if n == 1 {
		r, err := factorial(m.vals.pop(), p.col)
		if err != nil {
			return err
		}
		m.vals.push(r)
		return nil
	}
	b := m.vals.pop()
	a := m.vals.pop()
	r, err := binary(a, p.op, b, p.col)
	if err != nil {
		return err
	}
	m.vals.push(r)
	return nil
}

// invalid creates the error for an operator pair with the Invalid relation.
func invalid(top pending, op Operator, col int) error {
	if op == OpRight && top.op == OpEnd {
		return &BracketError{Col: col, Right: op.String()}
	}
	return &OperatorError{Col: col, Operator: op.String(), After: top.op.String()}
}
