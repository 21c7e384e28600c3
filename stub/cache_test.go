package stub

import (
	"reflect"
	"testing"

	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/shape"
)

func sampleFunc() Func {
	ret := shape.Scalar(shape.KindS64)
	return Func{
		Name:         "exchange",
		Direction:    marshal.ManagedToUnmanaged,
		FrameBounded: true,
		Params: []Param{
			{Name: "c", Type: shape.Char16(), ByRef: true},
			{Name: "n", Type: shape.Scalar(shape.KindU32)},
		},
		Return: &ret,
	}
}

func TestCacheKeyStability(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fn := sampleFunc()
	if c.Key(fn) != c.Key(fn) {
		t.Error("Key should be deterministic")
	}

	changed := sampleFunc()
	changed.FrameBounded = false
	if c.Key(fn) == c.Key(changed) {
		t.Error("Key must change when frame-boundedness changes")
	}

	annotated := sampleFunc()
	annotated.Params[1].ByValue = marshal.ByValueIn
	if c.Key(fn) == c.Key(annotated) {
		t.Error("Key must change when a by-value annotation changes")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	prog, err := NewBuilder().Build(sampleFunc())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	key := c.Key(sampleFunc())
	if err := c.Store(key, prog); err != nil {
		t.Fatalf("Store error: %v", err)
	}

	loaded, found, err := c.Load(key)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !found {
		t.Fatal("Load should hit after Store")
	}
	if !reflect.DeepEqual(prog, loaded) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", loaded, prog)
	}
}

func TestCacheMiss(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, found, err := c.Load("0123456789abcdef")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if found {
		t.Error("Load of an unknown key should miss")
	}
}
