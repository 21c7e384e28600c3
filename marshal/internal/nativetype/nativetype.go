// Package nativetype holds the native-side representation table for
// managed shapes: the native spelling, size, alignment, and the core
// value type the representation flattens to in a stub signature.
package nativetype

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/stubgen/shape"
)

// Descriptor describes the native-side representation of one managed
// shape. Descriptors are constants; callers never mutate them.
type Descriptor struct {
	Name  string        // native spelling, e.g. "uint16_t"
	Size  uint32        // byte size in native memory
	Align uint32        // byte alignment in native memory
	Core  api.ValueType // core value type when flattened into a signature
}

// PointerSize is the byte size of a native pointer. The target ABI is
// 32-bit.
const PointerSize = 4

// PointerCore is the core value type carrying native addresses.
const PointerCore = api.ValueTypeI32

var table = map[shape.Kind]Descriptor{
	shape.KindBool:   {Name: "uint8_t", Size: 1, Align: 1, Core: api.ValueTypeI32},
	shape.KindU8:     {Name: "uint8_t", Size: 1, Align: 1, Core: api.ValueTypeI32},
	shape.KindS8:     {Name: "int8_t", Size: 1, Align: 1, Core: api.ValueTypeI32},
	shape.KindU16:    {Name: "uint16_t", Size: 2, Align: 2, Core: api.ValueTypeI32},
	shape.KindS16:    {Name: "int16_t", Size: 2, Align: 2, Core: api.ValueTypeI32},
	shape.KindU32:    {Name: "uint32_t", Size: 4, Align: 4, Core: api.ValueTypeI32},
	shape.KindS32:    {Name: "int32_t", Size: 4, Align: 4, Core: api.ValueTypeI32},
	shape.KindU64:    {Name: "uint64_t", Size: 8, Align: 8, Core: api.ValueTypeI64},
	shape.KindS64:    {Name: "int64_t", Size: 8, Align: 8, Core: api.ValueTypeI64},
	shape.KindF32:    {Name: "float", Size: 4, Align: 4, Core: api.ValueTypeF32},
	shape.KindF64:    {Name: "double", Size: 8, Align: 8, Core: api.ValueTypeF64},
	shape.KindChar16: {Name: "uint16_t", Size: 2, Align: 2, Core: api.ValueTypeI32},
}

// For returns the native representation of a managed kind. The second
// result is false when the kind has no fixed native representation
// (segments, structs, and custom shapes are owned by other marshaller
// families).
func For(k shape.Kind) (Descriptor, bool) {
	d, ok := table[k]
	return d, ok
}

// Pointer returns the pointer-to-d descriptor used for by-reference
// signature positions.
func Pointer(d Descriptor) Descriptor {
	return Descriptor{
		Name:  d.Name + "*",
		Size:  PointerSize,
		Align: PointerSize,
		Core:  PointerCore,
	}
}
