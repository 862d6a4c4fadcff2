package calc

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package unwraps to exactly one of
// these, so callers can check the kind with errors.Is.
var (
	ErrInvalidNumber       = errors.New("invalid number")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidFactorial    = errors.New("invalid factorial")
	ErrInvalidDomain       = errors.New("argument outside domain")
	ErrUnknownFunction     = errors.New("unknown function")
)

// NumberError indicates a literal that cannot be scanned. It implements
// InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned, including its sign.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected number")
	}
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return ErrInvalidNumber
}

// OperatorError indicates an operator or character that cannot appear where
// it does. It implements InputError.
type OperatorError struct {
	// Col is the position of the offending character.
	Col int
	// Operator is the offending character.
	Operator string
	// After is the operator it cannot follow, if any.
	After string
}

func (err *OperatorError) Error() string {
	if err.After == "" {
		return errpos(err.Col, "unexpected "+strconv.Quote(err.Operator))
	}
	return errpos(err.Col, strconv.Quote(err.Operator)+" cannot follow "+strconv.Quote(err.After))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrMalformedExpression
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unmatched opening bracket, or empty.
	Left string
	// Right is the unmatched closing bracket, or empty.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMalformedExpression
}

// OperandError indicates an operator without enough operands, or operands
// with no operator to combine them. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or of the end of the expression
	// if there are operands left over.
	Col int
	// Operator is the operator that was missing an operand. It is empty if
	// operands were left over.
	Operator string
}

func (err *OperandError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "operands with no operator between them")
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrMalformedExpression
}

// EmptyExpressionError is an error indicating an expression with operators
// but no operands, e.g. "()".
type EmptyExpressionError struct {
	// Col is the position of the end of the expression.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrMalformedExpression
}

// DivisionError indicates a division by exactly zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division of "+formatFloat(err.X)+" by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Unwrap() error {
	return ErrDivisionByZero
}

// FactorialError indicates a factorial of a negative or non-integer value. It
// implements InputError.
type FactorialError struct {
	// Col is the position of the factorial operator.
	Col int
	// X is the operand.
	X float64
}

func (err *FactorialError) Error() string {
	return errpos(err.Col, "factorial of "+formatFloat(err.X)+" is not defined")
}

func (err *FactorialError) Pos() int {
	return err.Col
}

func (err *FactorialError) Unwrap() error {
	return ErrInvalidFactorial
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is the name of the function.
	Func string
}

func (err *DomainError) Error() string {
	return formatFloat(err.X) + " outside domain of " + err.Func
}

func (err *DomainError) Unwrap() error {
	return ErrInvalidDomain
}

// FuncError is an error from calling a function that does not exist.
type FuncError struct {
	// Name is the name that was called.
	Name string
}

func (err *FuncError) Error() string {
	return "undefined function: " + strconv.Quote(err.Name)
}

func (err *FuncError) Unwrap() error {
	return ErrUnknownFunction
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// InputError is an error with position information. Every error resulting from
// invalid input to the flat evaluator implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*FactorialError)(nil)
)
