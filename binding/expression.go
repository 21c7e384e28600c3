package binding

import "strings"

// Expression is a declarative binding value: a marshaler-type token or
// an invocation of a marshaler constructor. Expressions are plain
// immutable trees; rendering them into host syntax belongs to the
// emission backend.
type Expression interface {
	String() string
	isExpression()
}

// Token names a marshaler type, e.g. "marshaler.Char16".
type Token struct {
	Name string
}

func (t Token) String() string { return t.Name }
func (Token) isExpression()    {}

// Call invokes a marshaler constructor with argument expressions.
type Call struct {
	Target string
	Args   []Expression
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Target)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (Call) isExpression() {}
