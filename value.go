package regram

import (
	"fmt"
	"strconv"
	"strings"
)

type FormatToken int

const (
	FormatToken_None FormatToken = iota
	FormatToken_Name
	FormatToken_Literal
)

type FormatFn func(input string, token FormatToken) string

// Value is the structural result a compiled parser hands back: a
// String for a terminal match, a Record for a keyed sequence, a List
// for a repetition.  Reshape functions consume and produce Values.
type Value interface {
	String() string
	Text() string
	Type() string
	Accept(ValueVisitor) error
	Format(FormatFn) string
}

type ValueVisitor interface {
	VisitString(n *String) error
	VisitRecord(n *Record) error
	VisitList(n *List) error
}

// String Value

type String struct {
	Value string
}

func NewString(value string) *String {
	return &String{Value: value}
}

func (n String) Type() string                { return "string" }
func (n String) String() string              { return fmt.Sprintf("%q", n.Value) }
func (n String) Text() string                { return n.Value }
func (n String) Accept(v ValueVisitor) error { return v.VisitString(&n) }
func (n String) Format(fn FormatFn) string   { return formatValue(n, fn) }

// Record Value

// Field is a single named entry of a Record, in match order.
type Field struct {
	Name  string
	Value Value
}

// Record is the result of a Sequence with keyed children: an ordered
// association from key to the re-parsed result of that child's
// captured substring.
type Record struct {
	Fields []Field
}

func NewRecord(fields []Field) *Record {
	return &Record{Fields: fields}
}

// Get returns the value stored under `name` and whether it exists.
func (n Record) Get(name string) (Value, bool) {
	for _, field := range n.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

func (n Record) Type() string                { return "record" }
func (n Record) Accept(v ValueVisitor) error { return v.VisitRecord(&n) }
func (n Record) Format(fn FormatFn) string   { return formatValue(n, fn) }

func (n Record) String() string {
	var s strings.Builder
	s.WriteString("Record(")
	for i, field := range n.Fields {
		fmt.Fprintf(&s, "%s: %s", field.Name, field.Value)
		if i < len(n.Fields)-1 {
			s.WriteString(", ")
		}
	}
	s.WriteString(")")
	return s.String()
}

func (n Record) Text() string {
	var s strings.Builder
	for _, field := range n.Fields {
		s.WriteString(field.Value.Text())
	}
	return s.String()
}

// List Value

// List is the result of a Repeat: one entry per repetition, in the
// order they were consumed from the input.
type List struct {
	Items []Value
}

func NewList(items []Value) *List {
	return &List{Items: items}
}

func (n List) Type() string                { return "list" }
func (n List) Accept(v ValueVisitor) error { return v.VisitList(&n) }
func (n List) Format(fn FormatFn) string   { return formatValue(n, fn) }

func (n List) String() string {
	var s strings.Builder
	s.WriteString("List(")
	for i, item := range n.Items {
		s.WriteString(item.String())
		if i < len(n.Items)-1 {
			s.WriteString(", ")
		}
	}
	s.WriteString(")")
	return s.String()
}

func (n List) Text() string {
	var s strings.Builder
	for _, item := range n.Items {
		s.WriteString(item.Text())
	}
	return s.String()
}

type ValuePrinter struct {
	padStr *[]string
	output *strings.Builder
	format FormatFn
}

func NewValuePrinter(format FormatFn) *ValuePrinter {
	return &ValuePrinter{
		padStr: &[]string{},
		output: &strings.Builder{},
		format: format,
	}
}

func formatValue(value Value, fmtFn FormatFn) string {
	p := NewValuePrinter(fmtFn)
	value.Accept(p)
	return p.output.String()
}

func (v *ValuePrinter) VisitString(n *String) error {
	v.write(v.format(strconv.Quote(n.Value), FormatToken_Literal))
	return nil
}

func (v *ValuePrinter) VisitRecord(n *Record) error {
	header := fmt.Sprintf("Record<%d>", len(n.Fields))
	v.writel(v.format(header, FormatToken_Name))
	for i, field := range n.Fields {
		switch {
		case i == len(n.Fields)-1:
			v.pwrite("└── ")
			v.write(v.format(field.Name, FormatToken_Name))
			v.write(": ")
			v.indent("    ")
			field.Value.Accept(v)
			v.unindent()
		default:
			v.pwrite("├── ")
			v.write(v.format(field.Name, FormatToken_Name))
			v.write(": ")
			v.indent("│   ")
			field.Value.Accept(v)
			v.unindent()
			v.write("\n")
		}
	}
	return nil
}

func (v *ValuePrinter) VisitList(n *List) error {
	header := fmt.Sprintf("List<%d>", len(n.Items))
	v.writel(v.format(header, FormatToken_Name))
	for i, item := range n.Items {
		switch {
		case i == len(n.Items)-1:
			v.pwrite("└── ")
			v.indent("    ")
			item.Accept(v)
			v.unindent()
		default:
			v.pwrite("├── ")
			v.indent("│   ")
			item.Accept(v)
			v.unindent()
			v.write("\n")
		}
	}
	return nil
}

func (v *ValuePrinter) indent(s string) {
	*v.padStr = append(*v.padStr, s)
}

func (v *ValuePrinter) unindent() {
	index := len(*v.padStr) - 1
	*v.padStr = (*v.padStr)[:index]
}

func (v *ValuePrinter) padding() {
	for _, item := range *v.padStr {
		v.write(item)
	}
}

func (v *ValuePrinter) writel(s string) {
	v.write(s)
	v.output.WriteRune('\n')
}

func (v *ValuePrinter) write(s string) {
	v.output.WriteString(s)
}

func (v *ValuePrinter) pwrite(s string) {
	v.padding()
	v.write(s)
}
