package ops

import "strings"

// Kind discriminates the closed set of operation variants.
type Kind uint8

const (
	// KindDeclare introduces a native-typed local.
	KindDeclare Kind = iota
	// KindAssign copies a value between identifiers under a conversion.
	KindAssign
	// KindPinCast pins managed storage for the duration of the native
	// call and exposes a native-typed alias over it.
	KindPinCast
	// KindInvoke marks the native call site during stub assembly.
	KindInvoke
)

var kindNames = [...]string{
	KindDeclare: "declare",
	KindAssign:  "assign",
	KindPinCast: "pin_cast",
	KindInvoke:  "invoke",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Conversion qualifies an assignment between representations.
type Conversion uint8

const (
	// ConvNone is a plain same-representation copy.
	ConvNone Conversion = iota
	// ConvWiden reinterprets the managed value as its (wider or equal)
	// unsigned native counterpart. Lossless.
	ConvWiden
	// ConvNarrow reinterprets the native value back into the managed
	// representation.
	ConvNarrow
)

var convNames = [...]string{
	ConvNone:   "none",
	ConvWiden:  "widen",
	ConvNarrow: "narrow",
}

func (c Conversion) String() string {
	if int(c) < len(convNames) {
		return convNames[c]
	}
	return "unknown"
}

// Op is one unit of emitted stub behavior. It is a closed tagged
// variant: the meaning of Dst/Src/Type depends on Kind. Ops are plain
// serializable values; executing or rendering them belongs to the
// emission backend.
type Op struct {
	Kind Kind       `msgpack:"k"`
	Dst  string     `msgpack:"d,omitempty"` // declare name, assign destination, pin alias
	Src  string     `msgpack:"s,omitempty"` // assign source, pin target
	Type string     `msgpack:"t,omitempty"` // native type spelling
	Conv Conversion `msgpack:"c,omitempty"`
}

// Declare builds a local declaration op.
func Declare(name, nativeType string) Op {
	return Op{Kind: KindDeclare, Dst: name, Type: nativeType}
}

// Assign builds an assignment op.
func Assign(dst, src string, conv Conversion) Op {
	return Op{Kind: KindAssign, Dst: dst, Src: src, Conv: conv}
}

// PinCast builds a scoped pin-and-cast op aliasing managed storage as
// nativeType for the duration of the call.
func PinCast(alias, target, nativeType string) Op {
	return Op{Kind: KindPinCast, Dst: alias, Src: target, Type: nativeType}
}

// Invoke builds the native call-site marker.
func Invoke() Op {
	return Op{Kind: KindInvoke}
}

// String renders a compact debug form. The emit package owns the real
// rendering.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())
	switch o.Kind {
	case KindDeclare:
		b.WriteByte(' ')
		b.WriteString(o.Type)
		b.WriteByte(' ')
		b.WriteString(o.Dst)
	case KindAssign:
		b.WriteByte(' ')
		b.WriteString(o.Dst)
		b.WriteString(" <- ")
		b.WriteString(o.Src)
		if o.Conv != ConvNone {
			b.WriteString(" (")
			b.WriteString(o.Conv.String())
			b.WriteByte(')')
		}
	case KindPinCast:
		b.WriteByte(' ')
		b.WriteString(o.Dst)
		b.WriteString(" = pin(")
		b.WriteString(o.Src)
		b.WriteString(") as ")
		b.WriteString(o.Type)
	}
	return b.String()
}

// Equal reports structural equality.
func (o Op) Equal(other Op) bool {
	return o == other
}
