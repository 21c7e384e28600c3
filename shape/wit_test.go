package shape

import (
	"testing"

	"go.bytecodealliance.org/wit"
)

func TestFromWIT(t *testing.T) {
	name := "point"

	tests := []struct {
		name string
		in   wit.Type
		want string
	}{
		{"bool", wit.Bool{}, "bool"},
		{"u8", wit.U8{}, "u8"},
		{"s16", wit.S16{}, "s16"},
		{"u64", wit.U64{}, "u64"},
		{"f64", wit.F64{}, "f64"},
		{"char", wit.Char{}, "char16"},
		{"string", wit.String{}, "segment<char16>"},
		{"list of u32", &wit.TypeDef{Kind: &wit.List{Type: wit.U32{}}}, "segment<u32>"},
		{
			"list of list of u8",
			&wit.TypeDef{Kind: &wit.List{Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}}},
			"segment<segment<u8>>",
		},
		{"record", &wit.TypeDef{Name: &name, Kind: &wit.Record{}}, "struct point"},
		{"alias", &wit.TypeDef{Kind: wit.U16{}}, "u16"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromWIT(tc.in)
			if err != nil {
				t.Fatalf("FromWIT error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("FromWIT = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFromWITUnsupported(t *testing.T) {
	_, err := FromWIT(&wit.TypeDef{Kind: &wit.Option{Type: wit.U8{}}})
	if err == nil {
		t.Fatal("expected error for unsupported TypeDef kind")
	}
}
