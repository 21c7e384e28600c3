// Package emit renders assembled stub programs into a C-like textual
// listing. The generator core never depends on this package; rendering
// is strictly downstream of assembly.
package emit

import (
	"strings"

	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/ops"
	"github.com/wippyai/stubgen/stub"
)

// Render produces the stub listing for one program.
func Render(p *stub.Program) string {
	var b strings.Builder

	b.WriteString("stub ")
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, arg := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(arg.NativeType)
	}
	b.WriteByte(')')
	if p.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(p.Return.NativeType)
	}
	b.WriteByte('\n')

	for _, d := range p.Diagnostics {
		b.WriteString("  // diagnostic ")
		b.WriteString(d.Path)
		b.WriteString(": ")
		b.WriteString(d.Detail)
		b.WriteByte('\n')
	}

	if len(p.Locals) > 0 {
		b.WriteString("  locals:\n")
		for _, op := range p.Locals {
			b.WriteString("    ")
			b.WriteString(renderOp(op))
			b.WriteByte('\n')
		}
	}

	writeStage := func(stage marshal.Stage) {
		staged := p.StageOpsFor(stage)
		if len(staged) == 0 {
			return
		}
		b.WriteString("  ")
		b.WriteString(stage.String())
		b.WriteString(":\n")
		for _, op := range staged {
			b.WriteString("    ")
			b.WriteString(renderOp(op))
			b.WriteByte('\n')
		}
	}

	writeStage(marshal.StageSetup)
	writeStage(marshal.StagePin)
	writeStage(marshal.StageMarshal)

	b.WriteString("  invoke ")
	if p.Return != nil {
		b.WriteString("__ret_native = ")
	}
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, arg := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(argExpr(arg))
	}
	b.WriteString(")\n")

	writeStage(marshal.StageUnmarshal)
	writeStage(marshal.StageCleanup)

	return b.String()
}

// argExpr renders the call-site expression the boundary decision picked
// for one argument.
func argExpr(arg stub.Arg) string {
	switch arg.Boundary {
	case marshal.ManagedIdentifier:
		return arg.Name
	case marshal.AddressOfNativeIdentifier:
		return "&" + marshal.NativeIdentifierFor(arg.Name)
	default:
		return marshal.NativeIdentifierFor(arg.Name)
	}
}

func renderOp(op ops.Op) string {
	switch op.Kind {
	case ops.KindDeclare:
		return op.Type + " " + op.Dst
	case ops.KindAssign:
		switch op.Conv {
		case ops.ConvWiden:
			return op.Dst + " = (widen) " + op.Src
		case ops.ConvNarrow:
			return op.Dst + " = (narrow) " + op.Src
		default:
			return op.Dst + " = " + op.Src
		}
	case ops.KindPinCast:
		return "pinned " + op.Dst + " = (" + op.Type + ") &" + op.Src
	default:
		return op.String()
	}
}
