package calc

// Operator is an operator that can appear on the operator stack.
type Operator int8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	// OpFact is the postfix factorial operator, the only unary operator
	// the engine reduces. Unary minus is part of number literals.
	OpFact
	OpLeft
	OpRight
	// OpEnd marks both the start and the end of an expression.
	OpEnd

	numOps = int(OpEnd) + 1
)

// Operators contains the characters of every operator, indexed by Operator.
// OpEnd has no character.
const Operators = "+-*/^!()"

func (op Operator) String() string {
	if op < 0 || int(op) >= len(Operators) {
		return ""
	}
	return Operators[op : op+1]
}

// arity is the number of operands the operator consumes when reduced.
func (op Operator) arity() int {
	switch op {
	case OpFact:
		return 1
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return 2
	default:
		return 0
	}
}

// charOperator gets the operator for a character. Every character that is not
// an operator, including the terminating NUL, is OpEnd.
func charOperator(c byte) Operator {
	for i := 0; i < len(Operators); i++ {
		if Operators[i] == c {
			return Operator(i)
		}
	}
	return OpEnd
}

// Relation is the relation between the operator on top of the operator stack
// and the incoming operator.
type Relation int8

const (
	// Invalid means the pair cannot occur in a well-formed expression.
	Invalid Relation = iota
	// Lower means the incoming operator is pushed.
	Lower
	// Equal means the incoming operator closes the top one: ( with ), or the
	// leading end with the trailing end. The top is popped without reducing.
	Equal
	// Higher means the top operator is reduced before looking at the
	// incoming operator again.
	Higher
)

func (r Relation) String() string {
	switch r {
	case Lower:
		return "<"
	case Equal:
		return "="
	case Higher:
		return ">"
	default:
		return "invalid"
	}
}

const (
	lt = Lower
	eq = Equal
	gt = Higher
	xx = Invalid
)

// priorities is indexed as [top][incoming].
var priorities = [numOps][numOps]Relation{
	//          +   -   *   /   ^   !   (   )   end
	OpAdd:   {gt, gt, lt, lt, lt, lt, lt, gt, gt},
	OpSub:   {gt, gt, lt, lt, lt, lt, lt, gt, gt},
	OpMul:   {gt, gt, gt, gt, lt, lt, lt, gt, gt},
	OpDiv:   {gt, gt, gt, gt, lt, lt, lt, gt, gt},
	OpPow:   {gt, gt, gt, gt, gt, lt, lt, gt, gt},
	OpFact:  {gt, gt, gt, gt, gt, gt, xx, gt, gt},
	OpLeft:  {lt, lt, lt, lt, lt, lt, lt, eq, xx},
	OpRight: {xx, xx, xx, xx, xx, xx, xx, xx, xx},
	OpEnd:   {lt, lt, lt, lt, lt, lt, lt, xx, eq},
}

// priority gets the relation between the operator on top of the stack and
// the incoming one. Note that ^ on ^ is Higher, so exponentiation groups to
// the left.
func priority(top, incoming Operator) Relation {
	if top < 0 || int(top) >= numOps || incoming < 0 || int(incoming) >= numOps {
		return Invalid
	}
	return priorities[top][incoming]
}
