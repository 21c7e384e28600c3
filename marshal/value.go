package marshal

import (
	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/marshal/internal/nativetype"
	"github.com/wippyai/stubgen/ops"
	"github.com/wippyai/stubgen/shape"
)

// valueGenerator is the shared implementation behind the scalar and
// character marshallers. Both families copy whole fixed-width values;
// they differ only in which kinds they own and in the conversion pair
// applied on assignment.
type valueGenerator struct {
	family    shape.Family
	marshal   ops.Conversion // managed -> native assignment
	unmarshal ops.Conversion // native -> managed assignment
}

// NewScalarGenerator returns the marshaller for fixed-width numeric
// scalars. Scalars share a representation on both sides, so assignments
// carry no conversion.
func NewScalarGenerator() Generator {
	return valueGenerator{
		family:    shape.FamilyScalar,
		marshal:   ops.ConvNone,
		unmarshal: ops.ConvNone,
	}
}

// NewCharGenerator returns the marshaller for UTF-16 code units. A
// 16-bit character value is representable as its unsigned 16-bit native
// code unit without loss, so marshalling widens and unmarshalling
// narrows by reinterpretation.
func NewCharGenerator() Generator {
	return valueGenerator{
		family:    shape.FamilyChar,
		marshal:   ops.ConvWiden,
		unmarshal: ops.ConvNarrow,
	}
}

func (g valueGenerator) owns(s shape.Shape) bool {
	return s.Kind.Family() == g.family
}

// pinningEligible reports whether the zero-copy pinning fast path
// applies: the frame must be guaranteed not to outlive the native call,
// the value must not be in return position, and it must be passed by
// reference. Pinning outranks any by-value marshal-kind annotation.
func (g valueGenerator) pinningEligible(info TypePositionInfo, ctx StubCodeContext) bool {
	return info.ByRef &&
		ctx.SingleFrameSpansNativeContext &&
		!ctx.IsReturn &&
		info.ManagedType.Kind.IsPinnable()
}

func (g valueGenerator) BoundaryBehavior(info TypePositionInfo, ctx StubCodeContext) BoundaryBehavior {
	if g.pinningEligible(info, ctx) {
		// The pinned alias is already native-typed.
		return NativeIdentifier
	}
	if !g.UsesNativeIdentifier(info, ctx) {
		return ManagedIdentifier
	}
	if info.ByRef {
		return AddressOfNativeIdentifier
	}
	return NativeIdentifier
}

func (g valueGenerator) NativeType(info TypePositionInfo) (nativetype.Descriptor, error) {
	if !g.owns(info.ManagedType) {
		return nativetype.Descriptor{}, errors.Contract(
			errors.PhaseGenerate,
			[]string{info.Identifier},
			info.ManagedType.String(),
			g.family.String()+" marshaller asked for the native type of a foreign shape",
		)
	}
	d, ok := nativetype.For(info.ManagedType.Kind)
	if !ok {
		return nativetype.Descriptor{}, errors.Contract(
			errors.PhaseGenerate,
			[]string{info.Identifier},
			info.ManagedType.String(),
			"no native representation for shape",
		)
	}
	return d, nil
}

func (g valueGenerator) SignatureBehavior(info TypePositionInfo) SignatureBehavior {
	if info.ByRef {
		return SignaturePointerToNativeType
	}
	return SignatureNativeType
}

func (g valueGenerator) UsesNativeIdentifier(info TypePositionInfo, ctx StubCodeContext) bool {
	if g.pinningEligible(info, ctx) {
		return false
	}
	// A by-value parameter flowing purely into the native side converts
	// inline at the call boundary; no native local is needed.
	if !info.ByRef && ResolveDirection(info, ctx) == ManagedToUnmanaged {
		return false
	}
	return true
}

func (g valueGenerator) Generate(info TypePositionInfo, ctx StubCodeContext, stage Stage) ([]ops.Op, error) {
	if !g.owns(info.ManagedType) {
		return nil, errors.Contract(
			errors.PhaseGenerate,
			[]string{info.Identifier},
			info.ManagedType.String(),
			g.family.String()+" marshaller driven for a foreign shape",
		)
	}

	managed, native := ctx.Identifiers(info)

	if g.pinningEligible(info, ctx) {
		// Fast path: a scoped pin-and-cast aliases the managed storage
		// directly; it supersedes the generic conversion entirely.
		if stage == StagePin {
			d, err := g.NativeType(info)
			if err != nil {
				return nil, err
			}
			return []ops.Op{ops.PinCast(native, managed, nativetype.Pointer(d).Name)}, nil
		}
		return nil, nil
	}

	dir := ResolveDirection(info, ctx)

	switch stage {
	case StageMarshal:
		if dir == UnmanagedToManaged {
			return nil, nil
		}
		if !g.UsesNativeIdentifier(info, ctx) {
			return nil, nil
		}
		return []ops.Op{ops.Assign(native, managed, g.marshal)}, nil

	case StageUnmarshal:
		if dir == ManagedToUnmanaged {
			return nil, nil
		}
		if !g.UsesNativeIdentifier(info, ctx) {
			return nil, nil
		}
		return []ops.Op{ops.Assign(managed, native, g.unmarshal)}, nil

	default:
		// Setup, Pin, and Cleanup are never needed by the value family
		// on the generic path.
		return nil, nil
	}
}

func (g valueGenerator) SupportsByValueMarshalKind(kind ByValueKind, info TypePositionInfo) Support {
	return supportsByValueKind(kind, g.family, info)
}
