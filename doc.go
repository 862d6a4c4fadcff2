// Package calc implements a calculator for arithmetic expressions using
// operator precedence parsing.
//
// Expressions contain decimal numbers, the binary operators + - * / ^, the
// postfix factorial !, parentheses, and the functions sin, cos, tan, log, ln,
// sqrt, and abs. A - directly after the start of the expression, an open
// bracket, or another operator is the sign of a number, so "2+-3" is -1.
// Exponentiation groups to the left: "2^3^2" is "(2^3)^2". The trigonometric
// functions take degrees, and log is base 10.
//
// Evaluation happens in two stages. Expand replaces every function call with
// the decimal text of its result, evaluating arguments recursively. EvalFlat
// then evaluates the remaining expression with an operand stack and an
// operator stack, guided entirely by a table of relations between adjacent
// operators. Eval does both.
//
package calc
