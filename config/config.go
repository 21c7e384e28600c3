package config

import (
	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/shape"
	"github.com/wippyai/stubgen/stub"
)

// Surface selects which generation protocol a function uses.
const (
	SurfaceStub    = "stub"    // imperative staged call stub
	SurfaceBinding = "binding" // declarative marshaler composition
)

// Manifest is the top-level interop manifest.
type Manifest struct {
	Limits    Limits     `toml:"limits"`
	Functions []Function `toml:"function"`
}

// Limits optionally overrides target ABI limits.
type Limits struct {
	MaxFlatParams int64 `toml:"max_flat_params"`
}

// Function declares one interop function.
type Function struct {
	Name         string  `toml:"name"`
	Direction    string  `toml:"direction"` // "caller" (default) or "callee"
	Surface      string  `toml:"surface"`   // "stub" (default) or "binding"
	FrameBounded bool    `toml:"frame_bounded"`
	Return       string  `toml:"return"`
	Params       []Param `toml:"param"`
}

// Param declares one parameter.
type Param struct {
	Name      string `toml:"name"`
	Type      string `toml:"type"`
	ByRef     bool   `toml:"byref"`
	Direction string `toml:"direction"` // "", "in", "out", "inout"
	ByValue   string `toml:"byvalue"`   // "", "in", "out", "inout"
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "cannot decode manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks manifest-level constraints before any generation.
func (m *Manifest) Validate() error {
	maxParams := uint32(stub.MaxFlatParams)
	if m.Limits.MaxFlatParams != 0 {
		v, err := safecast.Conv[uint32](m.Limits.MaxFlatParams)
		if err != nil {
			return errors.Wrap(errors.PhaseConfig, errors.KindOverflow, err, "max_flat_params out of range")
		}
		maxParams = v
	}

	seen := make(map[string]bool)
	for _, fn := range m.Functions {
		if fn.Name == "" {
			return errors.InvalidInput(errors.PhaseConfig, "function without a name")
		}
		if seen[fn.Name] {
			return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path(fn.Name).
				Detail("duplicate function name").
				Build()
		}
		seen[fn.Name] = true

		count, err := safecast.Conv[uint32](len(fn.Params))
		if err != nil || count > maxParams {
			return errors.New(errors.PhaseConfig, errors.KindOverflow).
				Path(fn.Name).
				Detail("function declares %d parameters, limit is %d", len(fn.Params), maxParams).
				Build()
		}

		names := make(map[string]bool)
		for _, p := range fn.Params {
			if p.Name == "" {
				return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
					Path(fn.Name).
					Detail("parameter without a name").
					Build()
			}
			if names[p.Name] {
				return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
					Path(fn.Name, p.Name).
					Detail("duplicate parameter name").
					Build()
			}
			names[p.Name] = true
		}
	}
	return nil
}

// StubFuncs converts every stub-surface function into the driver's
// input form.
func (m *Manifest) StubFuncs() ([]stub.Func, error) {
	var out []stub.Func
	for _, fn := range m.Functions {
		if fn.Surface == SurfaceBinding {
			continue
		}
		converted, err := fn.ToStub()
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// BindingShapes returns the parameter and return shapes of every
// binding-surface function, for the declarative resolver.
func (m *Manifest) BindingShapes() (map[string][]shape.Shape, error) {
	out := make(map[string][]shape.Shape)
	for _, fn := range m.Functions {
		if fn.Surface != SurfaceBinding {
			continue
		}
		var shapes []shape.Shape
		for _, p := range fn.Params {
			s, err := shape.Parse(p.Type)
			if err != nil {
				return nil, wrapParam(fn.Name, p.Name, err)
			}
			shapes = append(shapes, s)
		}
		if fn.Return != "" {
			s, err := shape.Parse(fn.Return)
			if err != nil {
				return nil, wrapParam(fn.Name, "return", err)
			}
			shapes = append(shapes, s)
		}
		out[fn.Name] = shapes
	}
	return out, nil
}

// ToStub converts one declared function.
func (fn Function) ToStub() (stub.Func, error) {
	out := stub.Func{
		Name:         fn.Name,
		FrameBounded: fn.FrameBounded,
	}

	switch fn.Direction {
	case "", "caller":
		out.Direction = marshal.ManagedToUnmanaged
	case "callee":
		out.Direction = marshal.UnmanagedToManaged
	default:
		return stub.Func{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(fn.Name).
			Detail("unknown stub direction %q", fn.Direction).
			Build()
	}

	for _, p := range fn.Params {
		s, err := shape.Parse(p.Type)
		if err != nil {
			return stub.Func{}, wrapParam(fn.Name, p.Name, err)
		}
		declared, err := parseDeclared(p.Direction)
		if err != nil {
			return stub.Func{}, wrapParam(fn.Name, p.Name, err)
		}
		byValue, err := parseByValue(p.ByValue)
		if err != nil {
			return stub.Func{}, wrapParam(fn.Name, p.Name, err)
		}
		out.Params = append(out.Params, stub.Param{
			Name:     p.Name,
			Type:     s,
			ByRef:    p.ByRef,
			Declared: declared,
			ByValue:  byValue,
		})
	}

	if fn.Return != "" {
		s, err := shape.Parse(fn.Return)
		if err != nil {
			return stub.Func{}, wrapParam(fn.Name, "return", err)
		}
		out.Return = &s
	}

	return out, nil
}

func parseDeclared(s string) (marshal.DeclaredDirection, error) {
	switch s {
	case "":
		return marshal.DeclaredDefault, nil
	case "in":
		return marshal.DeclaredIn, nil
	case "out":
		return marshal.DeclaredOut, nil
	case "inout":
		return marshal.DeclaredInOut, nil
	default:
		return marshal.DeclaredDefault, errors.InvalidInput(errors.PhaseConfig, "unknown direction "+s)
	}
}

func parseByValue(s string) (marshal.ByValueKind, error) {
	switch s {
	case "":
		return marshal.ByValueDefault, nil
	case "in":
		return marshal.ByValueIn, nil
	case "out":
		return marshal.ByValueOut, nil
	case "inout":
		return marshal.ByValueInOut, nil
	default:
		return marshal.ByValueDefault, errors.InvalidInput(errors.PhaseConfig, "unknown byvalue kind "+s)
	}
}

func wrapParam(fn, param string, err error) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Path(fn, param).
		Cause(err).
		Detail("invalid parameter declaration").
		Build()
}
