package marshal

// Direction is the effective data-flow for one value, or the overall
// direction of a stub. ManagedToUnmanaged doubles as the caller-stub
// direction and UnmanagedToManaged as the callee-stub direction.
type Direction uint8

const (
	ManagedToUnmanaged Direction = iota
	UnmanagedToManaged
	Bidirectional
)

var directionNames = [...]string{
	ManagedToUnmanaged: "managed-to-unmanaged",
	UnmanagedToManaged: "unmanaged-to-managed",
	Bidirectional:      "bidirectional",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// DeclaredDirection is the direction annotation on a parameter before it
// is combined with the stub direction.
type DeclaredDirection uint8

const (
	// DeclaredDefault means no annotation: in for by-value positions,
	// in-out for by-reference positions.
	DeclaredDefault DeclaredDirection = iota
	DeclaredIn
	DeclaredOut
	DeclaredInOut
)

var declaredNames = [...]string{
	DeclaredDefault: "default",
	DeclaredIn:      "in",
	DeclaredOut:     "out",
	DeclaredInOut:   "inout",
}

func (d DeclaredDirection) String() string {
	if int(d) < len(declaredNames) {
		return declaredNames[d]
	}
	return "unknown"
}

// ResolveDirection combines a value's declared direction with the stub's
// direction to produce the effective data-flow. It is the only way a
// Direction is derived for a value; generators never set one directly.
func ResolveDirection(info TypePositionInfo, ctx StubCodeContext) Direction {
	if ctx.IsReturn {
		// The return value always flows out of the callee.
		if ctx.Direction == ManagedToUnmanaged {
			return UnmanagedToManaged
		}
		return ManagedToUnmanaged
	}

	declared := info.Declared
	if declared == DeclaredDefault {
		if info.ByRef {
			declared = DeclaredInOut
		} else {
			declared = DeclaredIn
		}
	}

	switch declared {
	case DeclaredInOut:
		return Bidirectional
	case DeclaredOut:
		if ctx.Direction == ManagedToUnmanaged {
			return UnmanagedToManaged
		}
		return ManagedToUnmanaged
	default: // in
		if ctx.Direction == ManagedToUnmanaged {
			return ManagedToUnmanaged
		}
		return UnmanagedToManaged
	}
}
