package marshal

import "github.com/wippyai/stubgen/shape"

// ReturnPosition is the Position value of the return-value descriptor.
const ReturnPosition = -1

// TypePositionInfo describes one value crossing the boundary: what it
// is, where it sits in the signature, and how the declaration annotates
// it. Infos are immutable after creation; the managed type is never
// reassigned.
type TypePositionInfo struct {
	ManagedType shape.Shape
	Identifier  string // stable, unique within one stub
	Position    int    // declared parameter position; ReturnPosition for the return value
	ByRef       bool
	Declared    DeclaredDirection
	ByValue     ByValueKind
}

// NativeIdentifierFor returns the native-side local name derived from a
// managed identifier. The derivation is fixed so that stages emitted
// independently still agree on the name.
func NativeIdentifierFor(identifier string) string {
	return "__" + identifier + "_native"
}

// StubCodeContext is the call-stub environment for one generation pass.
// Contexts are immutable values; the driver derives the per-position
// view with ForPosition instead of mutating a shared instance.
type StubCodeContext struct {
	// Direction of the stub itself: ManagedToUnmanaged for a caller
	// stub, UnmanagedToManaged for a callee stub.
	Direction Direction

	// SingleFrameSpansNativeContext is true when the managed frame that
	// owns the stub's locals is guaranteed not to outlive the native
	// call, so a pinned address stays valid for the call's duration.
	SingleFrameSpansNativeContext bool

	// IsReturn is true when the position being generated is the return
	// value.
	IsReturn bool
}

// ForPosition returns the context viewed from one descriptor's position.
func (c StubCodeContext) ForPosition(info TypePositionInfo) StubCodeContext {
	c.IsReturn = info.Position == ReturnPosition
	return c
}

// Identifiers returns the managed and native identifiers for a value in
// this context.
func (c StubCodeContext) Identifiers(info TypePositionInfo) (managed, native string) {
	return info.Identifier, NativeIdentifierFor(info.Identifier)
}
