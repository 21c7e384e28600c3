package stub

import (
	"go.uber.org/zap"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/ops"
)

// Flat signature limits of the target ABI.
const (
	MaxFlatParams  = 16
	MaxFlatResults = 1
)

// Builder runs the stage-driven emitter loop for one function at a
// time: it resolves each value's generator through the registry, asks
// the boundary and signature questions, and drives every generator
// through the stages in fixed order exactly once each.
//
// A Builder is stateless apart from the shared read-only registry and
// may be used concurrently.
type Builder struct {
	registry *marshal.Registry
}

// NewBuilder returns a builder over the default marshaller registry.
func NewBuilder() *Builder {
	return &Builder{registry: marshal.NewRegistry()}
}

// NewBuilderWithRegistry returns a builder over a caller-built registry.
func NewBuilderWithRegistry(r *marshal.Registry) *Builder {
	return &Builder{registry: r}
}

// Build assembles the stub program for one function. Contract
// violations fail the whole stub as a unit; capability diagnostics
// accumulate per descriptor and never suppress sibling values.
func (b *Builder) Build(fn Func) (*Program, error) {
	base := marshal.StubCodeContext{
		Direction:                     fn.Direction,
		SingleFrameSpansNativeContext: fn.FrameBounded,
	}

	infos := make([]marshal.TypePositionInfo, 0, len(fn.Params)+1)
	for i, p := range fn.Params {
		infos = append(infos, marshal.TypePositionInfo{
			ManagedType: p.Type,
			Identifier:  p.Name,
			Position:    i,
			ByRef:       p.ByRef,
			Declared:    p.Declared,
			ByValue:     p.ByValue,
		})
	}
	if fn.Return != nil {
		infos = append(infos, marshal.TypePositionInfo{
			ManagedType: *fn.Return,
			Identifier:  "ret",
			Position:    marshal.ReturnPosition,
		})
	}

	prog := &Program{Name: fn.Name}

	for _, info := range infos {
		ctx := base.ForPosition(info)

		gen, err := b.registry.Resolve(info.ManagedType)
		if err != nil {
			return nil, failStub(fn.Name, info, err)
		}

		native, err := gen.NativeType(info)
		if err != nil {
			return nil, failStub(fn.Name, info, err)
		}

		arg := Arg{
			Name:       info.Identifier,
			NativeType: native.Name,
			Boundary:   gen.BoundaryBehavior(info, ctx),
			Core:       native.Core,
		}
		if gen.SignatureBehavior(info) == marshal.SignaturePointerToNativeType {
			arg.NativeType = native.Name + "*"
			arg.Core = api.ValueTypeI32
		}

		if ctx.IsReturn {
			ret := arg
			prog.Return = &ret
			prog.ResultTypes = append(prog.ResultTypes, arg.Core)
		} else {
			prog.Args = append(prog.Args, arg)
			prog.ParamTypes = append(prog.ParamTypes, arg.Core)
		}

		if sup := gen.SupportsByValueMarshalKind(info.ByValue, info); !sup.Supported {
			prog.Diagnostics = append(prog.Diagnostics, Diagnostic{
				Path:   info.Identifier,
				Kind:   string(sup.Diagnostic.Kind),
				Detail: sup.Diagnostic.Detail,
			})
		}

		if gen.UsesNativeIdentifier(info, ctx) {
			_, nativeID := ctx.Identifiers(info)
			prog.Locals = append(prog.Locals, ops.Declare(nativeID, native.Name))
		}
	}

	if len(prog.ParamTypes) > MaxFlatParams {
		return nil, errors.New(errors.PhaseAssemble, errors.KindOverflow).
			Path(fn.Name).
			Detail("flattened parameters exceed MAX_FLAT_PARAMS (%d > %d)", len(prog.ParamTypes), MaxFlatParams).
			Build()
	}

	for _, stage := range marshal.Stages() {
		staged := StageOps{Stage: stage}
		for _, info := range infos {
			ctx := base.ForPosition(info)
			gen, err := b.registry.Resolve(info.ManagedType)
			if err != nil {
				return nil, failStub(fn.Name, info, err)
			}
			produced, err := gen.Generate(info, ctx, stage)
			if err != nil {
				return nil, failStub(fn.Name, info, err)
			}
			staged.Ops = append(staged.Ops, produced...)
		}
		prog.Stages = append(prog.Stages, staged)
	}

	Logger().Debug("stub assembled",
		zap.String("func", fn.Name),
		zap.Int("params", len(fn.Params)),
		zap.Int("diagnostics", len(prog.Diagnostics)),
	)
	return prog, nil
}

// failStub wraps a per-descriptor failure into the whole-stub failure:
// no partial stub output is successful once any descriptor reports a
// contract violation.
func failStub(fn string, info marshal.TypePositionInfo, cause error) error {
	return errors.New(errors.PhaseAssemble, errors.KindInvalidData).
		Path(fn, info.Identifier).
		ManagedType(info.ManagedType.String()).
		Cause(cause).
		Detail("stub generation failed as a unit").
		Build()
}
