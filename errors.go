package regram

import (
	"errors"
	"fmt"
)

// ErrNoMatch is the single failure sentinel shared by every compiled
// parser, returned whenever an expression does not match a prefix of
// its input.  Any (Value, nil) return is a successful match, so
// results that happen to be empty strings or empty lists are never
// mistaken for failures.
var ErrNoMatch = errors.New("no match")

// IsNoMatch reports whether err is the no-match sentinel, as opposed
// to a real failure bubbling out of a parser.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// CompileError is the error returned when a grammar can't be turned
// into a parser: a terminal carries an invalid pattern fragment, or
// a repetition wraps a pattern that matches the empty string.
type CompileError struct {
	Expr    Expr
	Message string
	Err     error
}

// Error returns the human readable representation of a compile error
func (e CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Message, e.Expr, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Expr)
}

func (e CompileError) Unwrap() error { return e.Err }
