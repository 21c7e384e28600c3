package shape

import (
	"strings"

	"github.com/wippyai/stubgen/errors"
)

// Shape describes the managed-side type of one value crossing the
// boundary. Shapes are immutable after construction and safe to share
// across concurrent generation passes.
type Shape struct {
	Kind Kind
	Name string // struct/custom type name; empty for builtins
	Elem *Shape // segment element; nil otherwise
}

// Scalar returns the shape for a builtin scalar kind.
func Scalar(k Kind) Shape {
	return Shape{Kind: k}
}

// Char16 returns the UTF-16 code unit shape.
func Char16() Shape {
	return Shape{Kind: KindChar16}
}

// Segment returns a segment-of-elem shape.
func Segment(elem Shape) Shape {
	e := elem
	return Shape{Kind: KindSegment, Elem: &e}
}

// Struct returns a named struct shape.
func Struct(name string) Shape {
	return Shape{Kind: KindStruct, Name: name}
}

// String renders the shape in manifest syntax, e.g. "u32",
// "segment<char16>", "struct point".
func (s Shape) String() string {
	switch s.Kind {
	case KindSegment:
		var b strings.Builder
		b.WriteString("segment<")
		if s.Elem != nil {
			b.WriteString(s.Elem.String())
		}
		b.WriteByte('>')
		return b.String()
	case KindStruct, KindCustom:
		if s.Name != "" {
			return s.Kind.String() + " " + s.Name
		}
		return s.Kind.String()
	default:
		return s.Kind.String()
	}
}

// Depth returns the segment nesting depth. Scalars are 0,
// segment<u8> is 1, segment<segment<u8>> is 2. Recursive binding
// resolution does one step per level, so termination is bounded by
// this value.
func (s Shape) Depth() int {
	d := 0
	for cur := &s; cur.Kind == KindSegment && cur.Elem != nil; cur = cur.Elem {
		d++
	}
	return d
}

// Parse reads manifest type syntax into a Shape. Accepted forms:
// builtin kind names ("u32", "char16"), "segment<T>" with a nested
// type, and "struct NAME".
func Parse(s string) (Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Shape{}, errors.InvalidInput(errors.PhaseConfig, "empty type")
	}

	if rest, ok := strings.CutPrefix(s, "segment<"); ok {
		inner, ok := strings.CutSuffix(rest, ">")
		if !ok {
			return Shape{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Detail("unterminated segment type %q", s).
				Build()
		}
		elem, err := Parse(inner)
		if err != nil {
			return Shape{}, err
		}
		return Segment(elem), nil
	}

	if name, ok := strings.CutPrefix(s, "struct "); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return Shape{}, errors.InvalidInput(errors.PhaseConfig, "struct type without a name")
		}
		return Struct(name), nil
	}

	for k, name := range kindNames {
		if name == s && Kind(k) != KindSegment && Kind(k) != KindStruct && Kind(k) != KindCustom {
			return Shape{Kind: Kind(k)}, nil
		}
	}

	return Shape{}, errors.New(errors.PhaseConfig, errors.KindUnknownShape).
		Detail("unknown type %q", s).
		Build()
}
