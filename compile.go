package regram

import (
	"errors"
	"fmt"
	"regexp"
)

// Parser matches a prefix of its input and returns the reshaped
// structural result, or ErrNoMatch when the input does not match.
type Parser func(input string) (Value, error)

// Compile transforms a grammar expression into an executable Parser.
// Every sub-expression is compiled up front: the returned closure
// performs no further compilation, keeps no state between
// invocations, and is safe to call from concurrent goroutines.
//
// A nil config means NewConfig() defaults.
func Compile(expr Expr, config *Config) (Parser, error) {
	if config == nil {
		config = NewConfig()
	}
	return compileExpr(expr, config)
}

func compileExpr(expr Expr, config *Config) (Parser, error) {
	switch n := expr.(type) {
	case *Terminal:
		return compileTerminal(n, config)
	case *Sequence:
		return compileSequence(n, config)
	case *Choice:
		return compileChoice(n, config)
	case *Repeat:
		return compileRepeat(n, config)
	default:
		panic(fmt.Sprintf("compile: unknown expression type %T", expr))
	}
}

// anchored compiles pattern so it only matches at the very start of
// the input, giving every compiled expression prefix-match semantics.
func anchored(expr Expr, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A` + pattern)
	if err != nil {
		return nil, &CompileError{Expr: expr, Message: "invalid pattern", Err: err}
	}
	return re, nil
}

// compileTerminal gates on the anchored pattern and, on success,
// hands the reshape the entire original input rather than just the
// matched prefix.  That asymmetry is part of the contract; the
// `compile.terminal_full_input` setting switches it off for callers
// that want matched-prefix payloads.
func compileTerminal(n *Terminal, config *Config) (Parser, error) {
	re, err := anchored(n, flatPattern(n))
	if err != nil {
		return nil, err
	}
	fullInput := config.GetBool("compile.terminal_full_input")
	return func(input string) (Value, error) {
		loc := re.FindStringIndex(input)
		if loc == nil {
			return nil, ErrNoMatch
		}
		payload := input
		if !fullInput {
			payload = input[:loc[1]]
		}
		return apply(n.reshape, NewString(payload)), nil
	}, nil
}

func compileSequence(n *Sequence, config *Config) (Parser, error) {
	re, err := anchored(n, groupedPattern(n))
	if err != nil {
		return nil, err
	}

	type keyedChild struct {
		key    string
		group  int
		parser Parser
	}

	groups := map[string]int{}
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}

	var children []keyedChild
	for _, item := range n.Items {
		key := item.Key()
		if key == "" {
			continue
		}
		parser, err := compileExpr(item, config)
		if err != nil {
			return nil, err
		}
		children = append(children, keyedChild{key: key, group: groups[key], parser: parser})
	}

	return func(input string) (Value, error) {
		m := re.FindStringSubmatch(input)
		if m == nil {
			return nil, ErrNoMatch
		}

		// with no keyed children there is no structure to
		// extract; the whole matched substring is the result
		if len(children) == 0 {
			return apply(n.reshape, NewString(m[0])), nil
		}

		fields := make([]Field, len(children))
		for i, child := range children {
			v, err := child.parser(m[child.group])
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: child.key, Value: v}
		}
		return apply(n.reshape, NewRecord(fields)), nil
	}, nil
}

func compileChoice(n *Choice, config *Config) (Parser, error) {
	type branch struct {
		re     *regexp.Regexp
		parser Parser
	}

	branches := make([]branch, len(n.Items))
	for i, item := range n.Items {
		re, err := anchored(item, flatPattern(item))
		if err != nil {
			return nil, err
		}
		parser, err := compileExpr(item, config)
		if err != nil {
			return nil, err
		}
		branches[i] = branch{re: re, parser: parser}
	}

	return func(input string) (Value, error) {
		for _, b := range branches {
			if !b.re.MatchString(input) {
				continue
			}
			v, err := b.parser(input)
			if errors.Is(err, ErrNoMatch) {
				// the branch pattern matched but its
				// parser refused the input; keep trying
				// the remaining branches
				continue
			}
			if err != nil {
				return nil, err
			}
			return apply(n.reshape, v), nil
		}
		return nil, ErrNoMatch
	}, nil
}

func compileRepeat(n *Repeat, config *Config) (Parser, error) {
	re, err := anchored(n.Expr, flatPattern(n.Expr))
	if err != nil {
		return nil, err
	}

	// every iteration must consume a non-empty prefix, otherwise
	// the matching loop below would never terminate
	if re.MatchString("") {
		return nil, &CompileError{
			Expr:    n,
			Message: "repetition over a pattern that matches the empty string",
		}
	}

	parser, err := compileExpr(n.Expr, config)
	if err != nil {
		return nil, err
	}
	maxMatches := config.GetInt("repeat.max_matches")

	return func(input string) (Value, error) {
		var pieces []string
		for cursor := 0; cursor < len(input); {
			loc := re.FindStringIndex(input[cursor:])
			if loc == nil {
				break
			}
			// patterns like `\b` slip past the compile-time
			// check above by matching zero width only on
			// non-empty input; a zero-width match can never
			// advance the cursor, so stop collecting
			if loc[1] == 0 {
				break
			}
			pieces = append(pieces, input[cursor:cursor+loc[1]])
			cursor += loc[1]
			if maxMatches > 0 && len(pieces) == maxMatches {
				break
			}
		}

		items := make([]Value, len(pieces))
		for i, piece := range pieces {
			v, err := parser(piece)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return apply(n.reshape, NewList(items)), nil
	}, nil
}

func apply(reshape ReshapeFunc, v Value) Value {
	if reshape == nil {
		return v
	}
	return reshape(v)
}
