package nativetype

import (
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/stubgen/shape"
)

func TestFor(t *testing.T) {
	tests := []struct {
		kind  shape.Kind
		name  string
		size  uint32
		align uint32
		core  api.ValueType
	}{
		{shape.KindBool, "uint8_t", 1, 1, api.ValueTypeI32},
		{shape.KindU8, "uint8_t", 1, 1, api.ValueTypeI32},
		{shape.KindS8, "int8_t", 1, 1, api.ValueTypeI32},
		{shape.KindU16, "uint16_t", 2, 2, api.ValueTypeI32},
		{shape.KindS16, "int16_t", 2, 2, api.ValueTypeI32},
		{shape.KindU32, "uint32_t", 4, 4, api.ValueTypeI32},
		{shape.KindS32, "int32_t", 4, 4, api.ValueTypeI32},
		{shape.KindU64, "uint64_t", 8, 8, api.ValueTypeI64},
		{shape.KindS64, "int64_t", 8, 8, api.ValueTypeI64},
		{shape.KindF32, "float", 4, 4, api.ValueTypeF32},
		{shape.KindF64, "double", 8, 8, api.ValueTypeF64},
		{shape.KindChar16, "uint16_t", 2, 2, api.ValueTypeI32},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			d, ok := For(tc.kind)
			if !ok {
				t.Fatalf("For(%s) not found", tc.kind)
			}
			if d.Name != tc.name || d.Size != tc.size || d.Align != tc.align || d.Core != tc.core {
				t.Errorf("For(%s) = %+v, want {%s %d %d %v}", tc.kind, d, tc.name, tc.size, tc.align, tc.core)
			}
		})
	}
}

func TestForUnrepresentable(t *testing.T) {
	for _, k := range []shape.Kind{shape.KindSegment, shape.KindStruct, shape.KindCustom} {
		if _, ok := For(k); ok {
			t.Errorf("For(%s) should have no fixed native representation", k)
		}
	}
}

func TestPointer(t *testing.T) {
	d, _ := For(shape.KindU16)
	p := Pointer(d)
	if p.Name != "uint16_t*" {
		t.Errorf("Pointer name = %q, want uint16_t*", p.Name)
	}
	if p.Size != PointerSize || p.Align != PointerSize {
		t.Errorf("Pointer size/align = %d/%d, want %d", p.Size, p.Align, PointerSize)
	}
	if p.Core != api.ValueTypeI32 {
		t.Errorf("Pointer core = %v, want i32", p.Core)
	}
}
