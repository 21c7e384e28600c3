package emit

import (
	"strings"
	"testing"

	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/shape"
	"github.com/wippyai/stubgen/stub"
)

func TestRenderPinnedStub(t *testing.T) {
	prog, err := stub.NewBuilder().Build(stub.Func{
		Name:         "swap-char",
		Direction:    marshal.ManagedToUnmanaged,
		FrameBounded: true,
		Params: []stub.Param{
			{Name: "c", Type: shape.Char16(), ByRef: true},
		},
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got := Render(prog)
	want := "stub swap-char(c: uint16_t*)\n" +
		"  pin:\n" +
		"    pinned __c_native = (uint16_t*) &c\n" +
		"  invoke swap-char(__c_native)\n"
	if got != want {
		t.Errorf("Render mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBidirectionalStub(t *testing.T) {
	ret := shape.Scalar(shape.KindS64)
	prog, err := stub.NewBuilder().Build(stub.Func{
		Name:      "exchange",
		Direction: marshal.ManagedToUnmanaged,
		Params: []stub.Param{
			{Name: "c", Type: shape.Char16(), ByRef: true},
			{Name: "n", Type: shape.Scalar(shape.KindU32)},
		},
		Return: &ret,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got := Render(prog)
	want := "stub exchange(c: uint16_t*, n: uint32_t) -> int64_t\n" +
		"  locals:\n" +
		"    uint16_t __c_native\n" +
		"    int64_t __ret_native\n" +
		"  marshal:\n" +
		"    __c_native = (widen) c\n" +
		"  invoke __ret_native = exchange(&__c_native, n)\n" +
		"  unmarshal:\n" +
		"    c = (narrow) __c_native\n" +
		"    ret = __ret_native\n"
	if got != want {
		t.Errorf("Render mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIncludesDiagnostics(t *testing.T) {
	prog, err := stub.NewBuilder().Build(stub.Func{
		Name:      "annotated",
		Direction: marshal.ManagedToUnmanaged,
		Params: []stub.Param{
			{Name: "n", Type: shape.Scalar(shape.KindU32), ByValue: marshal.ByValueOut},
		},
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got := Render(prog)
	if !strings.Contains(got, "// diagnostic n:") {
		t.Errorf("rendered stub should carry the diagnostic:\n%s", got)
	}
}
