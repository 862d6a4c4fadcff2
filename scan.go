package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// signOps contains the characters after which a - is a sign rather than a
// subtraction.
const signOps = "(+-*/^"

func isDigit(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// prev gets the last non-space byte before expr[i], or 0 if there is none.
// 0 stands for the start of the expression.
func prev(expr string, i int) byte {
	for i--; i >= 0; i-- {
		if !isSpace(expr[i]) {
			return expr[i]
		}
	}
	return 0
}

// startsNumber returns whether expr[i] begins a literal. A - begins a literal
// only at the start of the expression or after an open bracket or a binary
// operator.
func startsNumber(expr string, i int) bool {
	if i >= len(expr) {
		return false
	}
	c := expr[i]
	if isDigit(c) {
		return true
	}
	if c != '-' {
		return false
	}
	p := prev(expr, i)
	return p == 0 || strings.IndexByte(signOps, p) >= 0
}

// scanNumber scans the literal starting at expr[i], returning its value and
// the index just past it.
func scanNumber(expr string, i int) (float64, int, error) {
	start := i
	if i < len(expr) && expr[i] == '-' && startsNumber(expr, i) {
		i++
	}
	digits := i
	for i < len(expr) && isDigit(expr[i]) {
		i++
	}
	text := expr[start:i]
	if i == digits {
		return 0, i, &NumberError{Col: col(expr, start), Text: text}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat reports out of range literals along with an infinite
		// result. Those are as invalid as malformed ones.
		return 0, i, &NumberError{Col: col(expr, start), Text: text}
	}
	return v, i, nil
}

// col converts a byte index into expr to a 1-based rune column.
func col(expr string, i int) int {
	if i > len(expr) {
		i = len(expr)
	}
	return utf8.RuneCountInString(expr[:i]) + 1
}
