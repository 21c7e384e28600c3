package marshal

import (
	"go.uber.org/zap"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/shape"
)

// Registry maps managed shapes to the generator owning their family.
// A registry is built once before any generation pass and is read-only
// afterward, so it is safe to share across arbitrarily many concurrent
// passes.
type Registry struct {
	generators map[shape.Kind]Generator
}

// NewRegistry builds the default registry covering every shape the stub
// driver dispatches: the scalar kinds and the UTF-16 code unit kind.
// Container shapes take the declarative binding surface and are owned by
// the binding package's own resolver.
func NewRegistry() *Registry {
	scalar := NewScalarGenerator()
	char := NewCharGenerator()

	generators := make(map[shape.Kind]Generator)
	for _, k := range []shape.Kind{
		shape.KindBool,
		shape.KindU8, shape.KindS8,
		shape.KindU16, shape.KindS16,
		shape.KindU32, shape.KindS32,
		shape.KindU64, shape.KindS64,
		shape.KindF32, shape.KindF64,
	} {
		generators[k] = scalar
	}
	generators[shape.KindChar16] = char

	Logger().Debug("marshal registry built", zap.Int("entries", len(generators)))
	return &Registry{generators: generators}
}

// Resolve returns the generator owning a shape's family. A miss is a
// contract violation: the registry must be total over every shape the
// driver will request, so a missing entry means the registry and the
// generator set are inconsistent.
func (r *Registry) Resolve(s shape.Shape) (Generator, error) {
	g, ok := r.generators[s.Kind]
	if !ok {
		return nil, errors.Contract(
			errors.PhaseResolve,
			nil,
			s.String(),
			"no generator registered for shape",
		)
	}
	return g, nil
}
