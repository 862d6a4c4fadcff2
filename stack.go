package calc

import (
	"github.com/golang-collections/collections/stack"
)

// operands is the operand stack.
type operands struct {
	s *stack.Stack
}

func newOperands() operands {
	return operands{s: stack.New()}
}

func (o operands) push(v float64) {
	o.s.Push(v)
}

// pop removes the top value. The caller must check len first.
func (o operands) pop() float64 {
	return o.s.Pop().(float64)
}

func (o operands) len() int {
	return o.s.Len()
}

// pending is an operator on the operator stack along with the column where it
// appeared, for error reporting.
type pending struct {
	op  Operator
	col int
}

// operators is the operator stack. It always holds at least the leading
// OpEnd while an expression is being evaluated.
type operators struct {
	s *stack.Stack
}

func newOperators() operators {
	o := operators{s: stack.New()}
	o.push(pending{op: OpEnd, col: 1})
	return o
}

func (o operators) push(p pending) {
	o.s.Push(p)
}

func (o operators) pop() pending {
	return o.s.Pop().(pending)
}

func (o operators) top() pending {
	return o.s.Peek().(pending)
}

func (o operators) len() int {
	return o.s.Len()
}
