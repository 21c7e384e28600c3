package marshal

import (
	"github.com/wippyai/stubgen/marshal/internal/nativetype"
	"github.com/wippyai/stubgen/ops"
)

// BoundaryBehavior describes how the native-side identifier is exposed
// at the call boundary.
type BoundaryBehavior uint8

const (
	// NativeIdentifier passes the native identifier (or pinned alias)
	// directly.
	NativeIdentifier BoundaryBehavior = iota
	// ManagedIdentifier passes the managed identifier; no separate
	// native local exists and conversion happens inline.
	ManagedIdentifier
	// AddressOfNativeIdentifier passes the address of the native local
	// for by-reference positions.
	AddressOfNativeIdentifier
)

var boundaryNames = [...]string{
	NativeIdentifier:          "native-identifier",
	ManagedIdentifier:         "managed-identifier",
	AddressOfNativeIdentifier: "address-of-native-identifier",
}

func (b BoundaryBehavior) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return "unknown"
}

// SignatureBehavior is the shape of the native-side parameter in the
// generated signature.
type SignatureBehavior uint8

const (
	// SignatureNativeType passes the native type by value.
	SignatureNativeType SignatureBehavior = iota
	// SignaturePointerToNativeType passes a pointer to the native type.
	// Used iff the value is by-reference.
	SignaturePointerToNativeType
)

var signatureNames = [...]string{
	SignatureNativeType:          "native-type",
	SignaturePointerToNativeType: "pointer-to-native-type",
}

func (s SignatureBehavior) String() string {
	if int(s) < len(signatureNames) {
		return signatureNames[s]
	}
	return "unknown"
}

// Generator is the polymorphic unit of marshalling work: one
// implementation per type-shape family. Implementations are pure; given
// identical inputs every method returns structurally identical results,
// and Generate only returns data describing operations without executing
// anything.
type Generator interface {
	// BoundaryBehavior decides how the native-side identifier is exposed
	// at the boundary for this value.
	BoundaryBehavior(info TypePositionInfo, ctx StubCodeContext) BoundaryBehavior

	// NativeType maps the managed shape to its native representation.
	// Invoking it on a shape outside the generator's family is a
	// contract violation (errors.KindContract), never a user diagnostic.
	NativeType(info TypePositionInfo) (nativetype.Descriptor, error)

	// SignatureBehavior reports the native parameter shape:
	// pointer-to-native-type iff the value is by-reference.
	SignatureBehavior(info TypePositionInfo) SignatureBehavior

	// UsesNativeIdentifier reports whether a native-typed local distinct
	// from the managed identifier is needed for this value.
	UsesNativeIdentifier(info TypePositionInfo, ctx StubCodeContext) bool

	// Generate produces the operations for exactly one stage, in
	// emission order. An empty result means the generator contributes
	// nothing to that stage.
	Generate(info TypePositionInfo, ctx StubCodeContext, stage Stage) ([]ops.Op, error)

	// SupportsByValueMarshalKind declares whether a by-value marshal
	// kind annotation is honored for this value.
	SupportsByValueMarshalKind(kind ByValueKind, info TypePositionInfo) Support
}
