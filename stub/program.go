package stub

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/ops"
	"github.com/wippyai/stubgen/shape"
)

// Param is one declared parameter of an interop function.
type Param struct {
	Name     string
	Type     shape.Shape
	ByRef    bool
	Declared marshal.DeclaredDirection
	ByValue  marshal.ByValueKind
}

// Func is one interop function to generate a stub for.
type Func struct {
	Name string

	// Direction of the stub: ManagedToUnmanaged for a caller stub,
	// UnmanagedToManaged for a callee stub.
	Direction marshal.Direction

	// FrameBounded is true when the managed frame is guaranteed not to
	// outlive the native call, enabling the pinning fast path.
	FrameBounded bool

	Params []Param
	Return *shape.Shape
}

// Arg records the boundary decision for one signature position, for the
// emission backend to render the native signature and call expression.
type Arg struct {
	Name       string                   `msgpack:"name"`
	NativeType string                   `msgpack:"native_type"`
	Boundary   marshal.BoundaryBehavior `msgpack:"boundary"`
	Core       api.ValueType            `msgpack:"core"`
}

// StageOps is the operation list one stage produced, in emission order.
type StageOps struct {
	Stage marshal.Stage `msgpack:"stage"`
	Ops   []ops.Op      `msgpack:"ops"`
}

// Diagnostic is a capability diagnostic attached to one descriptor. It
// is advisory: the stub still generates for sibling values.
type Diagnostic struct {
	Path   string `msgpack:"path"`
	Kind   string `msgpack:"kind"`
	Detail string `msgpack:"detail"`
}

// Program is one assembled stub: the flat core signature, the native
// local declarations, and the per-stage operation lists in fixed stage
// order.
type Program struct {
	Name        string          `msgpack:"name"`
	ParamTypes  []api.ValueType `msgpack:"param_types"`
	ResultTypes []api.ValueType `msgpack:"result_types"`
	Args        []Arg           `msgpack:"args"`
	Return      *Arg            `msgpack:"return,omitempty"`
	Locals      []ops.Op        `msgpack:"locals"`
	Stages      []StageOps      `msgpack:"stages"`
	Diagnostics []Diagnostic    `msgpack:"diagnostics,omitempty"`
}

// StageOpsFor returns the operations of one stage.
func (p *Program) StageOpsFor(stage marshal.Stage) []ops.Op {
	for _, s := range p.Stages {
		if s.Stage == stage {
			return s.Ops
		}
	}
	return nil
}

// Flatten interleaves the program into one execution-ordered op stream:
// locals, then the pre-call stages, the invoke marker, and the
// post-call stages. Unmarshal reads identifiers Pin or Marshal
// produced, so the order is load-bearing.
func (p *Program) Flatten() []ops.Op {
	var out []ops.Op
	out = append(out, p.Locals...)
	out = append(out, p.StageOpsFor(marshal.StageSetup)...)
	out = append(out, p.StageOpsFor(marshal.StagePin)...)
	out = append(out, p.StageOpsFor(marshal.StageMarshal)...)
	out = append(out, ops.Invoke())
	out = append(out, p.StageOpsFor(marshal.StageUnmarshal)...)
	out = append(out, p.StageOpsFor(marshal.StageCleanup)...)
	return out
}
