package regram

import (
	"fmt"
	"strings"
)

// ReshapeFunc transforms the raw structural result of an expression
// before it is handed back to the expression's consumer.  A nil
// ReshapeFunc leaves the result untouched.
type ReshapeFunc func(Value) Value

// Expr is the interface implemented by the four grammar expression
// kinds: Terminal, Sequence, Choice and Repeat.  The set is closed;
// types outside this package cannot implement it.
type Expr interface {
	// Key returns the name attached to the expression, or the
	// empty string.  A key only has meaning on the direct child
	// of a Sequence, where it names the capture group and routes
	// the recursive re-parse of the captured substring.
	Key() string

	// Text is the flat regular expression rendering of the
	// expression, with no capture groups
	Text() string

	// String returns the string representation of a given expression
	String() string

	withKey(key string) Expr
	sealed()
}

// Branch is the subset of expressions accepted as Choice branches.
// Only Terminal and Sequence implement it; nesting a Choice or a
// Repeat directly under a Choice is ruled out at the type level.
type Branch interface {
	Expr
	branch()
}

// WithKey returns a copy of `expr` with `key` attached.  The original
// expression is left untouched, so multiple keyed views of the same
// substructure may coexist.
func WithKey(key string, expr Expr) Expr {
	return expr.withKey(key)
}

// JoinPatterns concatenates literal pattern fragments into a single
// Terminal.  The fragments are joined as-is, with no escaping; the
// caller is responsible for the combined fragment being valid
// regular expression syntax.
func JoinPatterns(fragments ...string) *Terminal {
	return NewTerminal(strings.Join(fragments, ""), nil)
}

// Expr Type: Terminal

type Terminal struct {
	key     string
	reshape ReshapeFunc
	Pattern string
}

func NewTerminal(pattern string, reshape ReshapeFunc) *Terminal {
	return &Terminal{Pattern: pattern, reshape: reshape}
}

func (n Terminal) Key() string    { return n.key }
func (n Terminal) Text() string   { return flatPattern(&n) }
func (n Terminal) String() string { return keyed(n.key, fmt.Sprintf("Terminal(%s)", n.Pattern)) }

func (n *Terminal) sealed() {}
func (n *Terminal) branch() {}

func (n *Terminal) withKey(key string) Expr {
	c := *n
	c.key = key
	return &c
}

// Expr Type: Sequence

type Sequence struct {
	key     string
	reshape ReshapeFunc
	Items   []Expr
}

func NewSequence(items []Expr, reshape ReshapeFunc) *Sequence {
	return &Sequence{Items: items, reshape: reshape}
}

func (n Sequence) Key() string    { return n.key }
func (n Sequence) Text() string   { return flatPattern(&n) }
func (n Sequence) String() string { return keyed(n.key, exprsString("Sequence", n.Items)) }

func (n *Sequence) sealed() {}
func (n *Sequence) branch() {}

func (n *Sequence) withKey(key string) Expr {
	c := *n
	c.key = key
	return &c
}

// Expr Type: Choice

type Choice struct {
	key     string
	reshape ReshapeFunc
	Items   []Branch
}

func NewChoice(items []Branch, reshape ReshapeFunc) *Choice {
	return &Choice{Items: items, reshape: reshape}
}

func (n Choice) Key() string    { return n.key }
func (n Choice) Text() string   { return flatPattern(&n) }
func (n Choice) String() string { return keyed(n.key, exprsString("Choice", n.Items)) }

func (n *Choice) sealed() {}

func (n *Choice) withKey(key string) Expr {
	c := *n
	c.key = key
	return &c
}

// Expr Type: Repeat

type Repeat struct {
	key     string
	reshape ReshapeFunc
	Expr    Expr
}

func NewRepeat(expr Expr, reshape ReshapeFunc) *Repeat {
	return &Repeat{Expr: expr, reshape: reshape}
}

func (n Repeat) Key() string    { return n.key }
func (n Repeat) Text() string   { return flatPattern(&n) }
func (n Repeat) String() string { return keyed(n.key, fmt.Sprintf("Repeat(%s)", n.Expr)) }

func (n *Repeat) sealed() {}

func (n *Repeat) withKey(key string) Expr {
	c := *n
	c.key = key
	return &c
}

// Helpers

func keyed(key, s string) string {
	if key == "" {
		return s
	}
	return fmt.Sprintf("%s^%s", s, key)
}

type asString interface{ String() string }

func exprsString[T asString](name string, items []T) string {
	var (
		s  strings.Builder
		ln = len(items) - 1
	)

	s.WriteString(name)
	s.WriteString("(")

	for i, child := range items {
		s.WriteString(child.String())

		if i < ln {
			s.WriteString(", ")
		}
	}

	s.WriteString(")")

	return s.String()
}
