package regram

import (
	"fmt"
	"strings"
)

// flatPattern renders an expression into regular expression source
// with no capture groups.  Keys are ignored entirely; the rendering
// is only good for testing whether a sub-pattern matches, never for
// extracting structure out of it.  Neither rendering appends an end
// anchor, so compiled patterns match a prefix of the input.
func flatPattern(expr Expr) string {
	switch n := expr.(type) {
	case *Terminal:
		return n.Pattern

	case *Sequence:
		var s strings.Builder
		for _, item := range n.Items {
			s.WriteString(flatPattern(item))
		}
		return s.String()

	case *Choice:
		var s strings.Builder
		s.WriteString("(")
		for i, item := range n.Items {
			if i > 0 {
				s.WriteString("|")
			}
			s.WriteString(flatPattern(item))
		}
		s.WriteString(")")
		return s.String()

	case *Repeat:
		return "(" + flatPattern(n.Expr) + "){0,}"

	default:
		panic(fmt.Sprintf("flatPattern: unknown expression type %T", expr))
	}
}

// groupedPattern renders a Sequence into regular expression source
// where each keyed direct child is wrapped in a named capture group.
// Children render in their flat form, so structure nested inside a
// child stays opaque to the Sequence; it is the child's own business
// once its captured substring is recursively re-parsed.
func groupedPattern(n *Sequence) string {
	var s strings.Builder
	for _, item := range n.Items {
		flat := flatPattern(item)
		if key := item.Key(); key != "" {
			fmt.Fprintf(&s, "(?P<%s>%s)", key, flat)
		} else {
			s.WriteString(flat)
		}
	}
	return s.String()
}
