package stub

import (
	"context"
	"fmt"
	"testing"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/shape"
)

func TestGenerateAllIndexAligned(t *testing.T) {
	funcs := make([]Func, 16)
	for i := range funcs {
		funcs[i] = Func{
			Name:      fmt.Sprintf("fn-%d", i),
			Direction: marshal.ManagedToUnmanaged,
			Params: []Param{
				{Name: "n", Type: shape.Scalar(shape.KindU32), ByRef: true},
			},
		}
	}

	d := NewDriver(4)
	programs, err := d.GenerateAll(context.Background(), funcs)
	if err != nil {
		t.Fatalf("GenerateAll error: %v", err)
	}
	if len(programs) != len(funcs) {
		t.Fatalf("programs = %d, want %d", len(programs), len(funcs))
	}
	for i, p := range programs {
		if p == nil {
			t.Fatalf("program %d is nil", i)
		}
		if p.Name != funcs[i].Name {
			t.Errorf("program %d name = %q, want %q", i, p.Name, funcs[i].Name)
		}
	}
}

func TestGenerateAllPropagatesContractFailure(t *testing.T) {
	funcs := []Func{
		{
			Name:      "good",
			Direction: marshal.ManagedToUnmanaged,
			Params:    []Param{{Name: "n", Type: shape.Scalar(shape.KindU8)}},
		},
		{
			Name:      "bad",
			Direction: marshal.ManagedToUnmanaged,
			Params:    []Param{{Name: "p", Type: shape.Struct("point")}},
		},
	}

	d := NewDriver(2)
	_, err := d.GenerateAll(context.Background(), funcs)
	if err == nil {
		t.Fatal("GenerateAll should fail when any stub hits a contract violation")
	}
	if !errors.IsContract(err) {
		t.Errorf("err = %v, want contract violation in chain", err)
	}
}

func TestGenerateAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	funcs := make([]Func, 64)
	for i := range funcs {
		funcs[i] = Func{
			Name:      fmt.Sprintf("fn-%d", i),
			Direction: marshal.ManagedToUnmanaged,
			Params:    []Param{{Name: "n", Type: shape.Scalar(shape.KindU32)}},
		}
	}

	d := NewDriver(1)
	if _, err := d.GenerateAll(ctx, funcs); err == nil {
		t.Fatal("GenerateAll should surface context cancellation")
	}
}
