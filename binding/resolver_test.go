package binding

import (
	"testing"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/shape"
)

func TestBindScalars(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		shape shape.Shape
		want  string
	}{
		{shape.Scalar(shape.KindBool), "marshaler.Bool"},
		{shape.Scalar(shape.KindU8), "marshaler.U8"},
		{shape.Scalar(shape.KindS32), "marshaler.S32"},
		{shape.Scalar(shape.KindF64), "marshaler.F64"},
		{shape.Char16(), "marshaler.Char16"},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			expr, err := r.Bind(tc.shape)
			if err != nil {
				t.Fatalf("Bind error: %v", err)
			}
			if expr.String() != tc.want {
				t.Errorf("Bind = %s, want %s", expr, tc.want)
			}
		})
	}
}

func TestBindSegmentComposition(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		shape shape.Shape
		want  string
	}{
		{shape.Segment(shape.Scalar(shape.KindU32)), "marshaler.Segment(marshaler.U32)"},
		{shape.Segment(shape.Char16()), "marshaler.Segment(marshaler.Char16)"},
		{
			shape.Segment(shape.Segment(shape.Scalar(shape.KindU8))),
			"marshaler.Segment(marshaler.Segment(marshaler.U8))",
		},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			expr, err := r.Bind(tc.shape)
			if err != nil {
				t.Fatalf("Bind error: %v", err)
			}
			if expr.String() != tc.want {
				t.Errorf("Bind = %s, want %s", expr, tc.want)
			}
		})
	}
}

// Round-trip consistency: the element-token argument of a container
// binding equals exactly the token direct resolution of the element
// would produce.
func TestBindRoundTripConsistency(t *testing.T) {
	elems := []shape.Shape{
		shape.Scalar(shape.KindU16),
		shape.Char16(),
		shape.Segment(shape.Scalar(shape.KindS64)),
	}

	for _, elem := range elems {
		t.Run(elem.String(), func(t *testing.T) {
			r := NewResolver()

			container, err := r.Bind(shape.Segment(elem))
			if err != nil {
				t.Fatalf("Bind(container) error: %v", err)
			}
			direct, err := r.MarshalerToken(elem)
			if err != nil {
				t.Fatalf("MarshalerToken(elem) error: %v", err)
			}

			call, ok := container.(Call)
			if !ok {
				t.Fatalf("container binding = %T, want Call", container)
			}
			if len(call.Args) != 1 {
				t.Fatalf("container args = %d, want 1", len(call.Args))
			}
			if call.Args[0].String() != direct.String() {
				t.Errorf("nested token %s != direct token %s", call.Args[0], direct)
			}
		})
	}
}

// Re-deriving a binding any number of times yields identical results.
func TestBindMemoizedAndPure(t *testing.T) {
	r := NewResolver()
	s := shape.Segment(shape.Segment(shape.Char16()))

	first, err := r.Bind(s)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := r.Bind(s)
		if err != nil {
			t.Fatal(err)
		}
		if again.String() != first.String() {
			t.Errorf("re-derived binding %s != %s", again, first)
		}
	}
}

func TestBindUnknownFamilyIsContractViolation(t *testing.T) {
	r := NewResolver()

	if _, err := r.Bind(shape.Struct("point")); !errors.IsContract(err) {
		t.Errorf("Bind(struct) err = %v, want contract violation", err)
	}
	if _, err := r.Bind(shape.Shape{Kind: shape.KindSegment}); !errors.IsContract(err) {
		t.Errorf("Bind(segment without element) err = %v, want contract violation", err)
	}
}
