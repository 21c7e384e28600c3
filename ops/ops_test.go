package ops

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		want string
	}{
		{"declare", Declare("__c_native", "uint16_t"), "declare uint16_t __c_native"},
		{"assign plain", Assign("a", "b", ConvNone), "assign a <- b"},
		{"assign widen", Assign("__c_native", "c", ConvWiden), "assign __c_native <- c (widen)"},
		{"assign narrow", Assign("c", "__c_native", ConvNarrow), "assign c <- __c_native (narrow)"},
		{"pin", PinCast("__c_native", "c", "uint16_t*"), "pin_cast __c_native = pin(c) as uint16_t*"},
		{"invoke", Invoke(), "invoke"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.op.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOpMsgpackRoundTrip(t *testing.T) {
	in := []Op{
		Declare("__x_native", "uint32_t"),
		Assign("__x_native", "x", ConvWiden),
		PinCast("__c_native", "c", "uint16_t*"),
		Invoke(),
	}

	data, err := msgpack.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out []Op
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if !in[i].Equal(out[i]) {
			t.Errorf("op %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}
