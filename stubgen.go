package stubgen

import (
	"context"

	"github.com/wippyai/stubgen/binding"
	"github.com/wippyai/stubgen/config"
	"github.com/wippyai/stubgen/stub"
)

// Result is the output of one whole-manifest generation pass.
type Result struct {
	// Programs are the assembled stub-surface programs, in manifest
	// order.
	Programs []*stub.Program

	// Bindings maps each binding-surface function to the composed
	// binding expressions of its values, in declaration order with the
	// return value last.
	Bindings map[string][]binding.Expression
}

// Generate builds every function in a manifest: staged stub programs
// for the stub surface and composed marshaler expressions for the
// binding surface.
func Generate(ctx context.Context, m *config.Manifest) (*Result, error) {
	funcs, err := m.StubFuncs()
	if err != nil {
		return nil, err
	}

	driver := stub.NewDriver(0)
	programs, err := driver.GenerateAll(ctx, funcs)
	if err != nil {
		return nil, err
	}

	shapes, err := m.BindingShapes()
	if err != nil {
		return nil, err
	}

	resolver := binding.NewResolver()
	bindings := make(map[string][]binding.Expression, len(shapes))
	for name, funcShapes := range shapes {
		exprs := make([]binding.Expression, 0, len(funcShapes))
		for _, s := range funcShapes {
			expr, err := resolver.Bind(s)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		bindings[name] = exprs
	}

	return &Result{Programs: programs, Bindings: bindings}, nil
}
