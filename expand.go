package calc

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Expand replaces each function call in expr, e.g. sqrt(16), with the decimal
// text of its result. Arguments may contain arbitrary expressions, including
// further calls. Calls that fail to evaluate are left as they are, as are
// calls written directly against another operand, like 2sqrt(4) or sqrt(4)5.
// Expand repeats until nothing changes, so Expand(Expand(s)) == Expand(s).
func Expand(expr string) string {
	return newExpander().expand(expr)
}

// expander expands the calls in one expression. Each distinct call is
// evaluated once, however many times it is seen.
type expander struct {
	calls map[string]expansion
}

// expansion is the outcome of one call.
type expansion struct {
	text string
	err  error
}

func newExpander() *expander {
	return &expander{calls: make(map[string]expansion)}
}

// eval expands expr and evaluates the result. If the flat evaluation fails
// at a call that could not be expanded, the error is the one from the call.
func (e *expander) eval(expr string) (float64, error) {
	flat := e.expand(expr)
	r, err := EvalFlat(flat)
	if err != nil {
		return 0, e.cause(flat, err)
	}
	return r, nil
}

func (e *expander) expand(expr string) string {
	for {
		changed := false
		for _, name := range funcNames {
			var c bool
			expr, c = e.expandName(expr, name)
			changed = changed || c
		}
		if !changed {
			return expr
		}
	}
}

// expandName makes one pass over expr replacing calls to one function.
func (e *expander) expandName(expr, name string) (string, bool) {
	changed := false
	pos := 0
	for {
		start, end := nextCall(expr, name, pos)
		if start < 0 {
			return expr, changed
		}
		x := e.call(expr[start : end+1])
		if x.err != nil {
			pos = end + 1
			continue
		}
		expr = expr[:start] + x.text + expr[end+1:]
		changed = true
		pos = start + len(x.text)
	}
}

// call evaluates the call text name(arg), which nextCall found.
func (e *expander) call(text string) expansion {
	if x, ok := e.calls[text]; ok {
		return x
	}
	open := strings.IndexByte(text, '(')
	var x expansion
	x.text, x.err = e.callText(text[:open], text[open+1:len(text)-1])
	e.calls[text] = x
	return x
}

// callText evaluates a call and formats its result for substitution.
func (e *expander) callText(name, arg string) (string, error) {
	x, err := e.eval(arg)
	if err != nil {
		return "", err
	}
	r, err := call(name, x)
	if err != nil {
		return "", err
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// There is no literal for these, so the call can't be replaced.
		return "", &NumberError{Col: 1, Text: formatFloat(r)}
	}
	// The shortest decimal that parses back to r, without an exponent, so
	// nothing is lost to the round trip through text.
	return decimal.NewFromFloat(r).String(), nil
}

// cause finds the error of the failed call in expr at the position where err
// occurred. If there is no such call, the result is err.
func (e *expander) cause(expr string, err error) error {
	var ie InputError
	if !errors.As(err, &ie) {
		return err
	}
	at := ie.Pos()
	for _, name := range funcNames {
		pos := 0
		for {
			start, end := nextCall(expr, name, pos)
			if start < 0 {
				break
			}
			if col(expr, start) <= at && at <= col(expr, end) {
				if x, ok := e.calls[expr[start:end+1]]; ok && x.err != nil {
					return x.err
				}
			}
			pos = start + 1
		}
	}
	return err
}

// nextCall finds the first call to name in expr at or after pos, returning
// the indices of the name and of the call's close bracket, or -1, -1 if there
// is none. A name is not a call when it is part of a longer name, has no
// bracketed argument, or sits against another operand, since substituting a
// number there would merge it into its neighbor.
func nextCall(expr, name string, pos int) (int, int) {
	for {
		k := strings.Index(expr[pos:], name)
		if k < 0 {
			return -1, -1
		}
		start := pos + k
		open := start + len(name)
		if isIdent(prev(expr, start)) || joinsLeft(prev(expr, start)) || open >= len(expr) || expr[open] != '(' {
			pos = start + 1
			continue
		}
		end := matching(expr, open)
		if end < 0 {
			pos = open + 1
			continue
		}
		if isIdent(next(expr, end+1)) || joinsRight(next(expr, end+1)) {
			pos = open + 1
			continue
		}
		return start, end
	}
}

// next gets the first non-space byte at or after expr[i], or 0 if there is
// none.
func next(expr string, i int) byte {
	for ; i < len(expr); i++ {
		if !isSpace(expr[i]) {
			return expr[i]
		}
	}
	return 0
}

func joinsLeft(c byte) bool {
	return c == '.' || c == ')' || c == '!'
}

func joinsRight(c byte) bool {
	return c == '.' || c == '('
}

// matching finds the index of the close bracket matching the open bracket at
// expr[open]. The result is -1 if there is none.
func matching(expr string, open int) int {
	depth := 0
	for i := open + 1; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

func isIdent(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
