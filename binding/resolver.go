package binding

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/shape"
)

// binderFunc produces the binding expression for one shape family. The
// resolver is passed back in so parameterized families can resolve
// their element shapes through the same registry.
type binderFunc func(r *Resolver, s shape.Shape) (Expression, error)

// binders is the family registry for the declarative surface. Built
// once, read-only afterward.
var binders map[shape.Family]binderFunc

func init() {
	binders = map[shape.Family]binderFunc{
		shape.FamilyScalar:  bindScalar,
		shape.FamilyChar:    bindScalar,
		shape.FamilySegment: bindSegment,
	}
}

// scalarTokens spells the marshaler-type token per builtin kind.
var scalarTokens = map[shape.Kind]string{
	shape.KindBool:   "marshaler.Bool",
	shape.KindU8:     "marshaler.U8",
	shape.KindS8:     "marshaler.S8",
	shape.KindU16:    "marshaler.U16",
	shape.KindS16:    "marshaler.S16",
	shape.KindU32:    "marshaler.U32",
	shape.KindS32:    "marshaler.S32",
	shape.KindU64:    "marshaler.U64",
	shape.KindS64:    "marshaler.S64",
	shape.KindF32:    "marshaler.F32",
	shape.KindF64:    "marshaler.F64",
	shape.KindChar16: "marshaler.Char16",
}

// Resolver maps shapes to composed binding expressions for the
// declarative interop surface. Resolution is memoized and referentially
// transparent: the same shape always yields a structurally identical
// expression, and recursion does one step per segment nesting level, so
// it terminates for any concrete descriptor.
type Resolver struct {
	memo sync.Map // shape string -> Expression
}

// NewResolver returns a resolver over the built-in binder registry.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Bind returns the binding expression for a shape.
func (r *Resolver) Bind(s shape.Shape) (Expression, error) {
	key := s.String()
	if cached, ok := r.memo.Load(key); ok {
		return cached.(Expression), nil
	}

	bind, ok := binders[s.Kind.Family()]
	if !ok {
		return nil, errors.Contract(
			errors.PhaseBind,
			nil,
			s.String(),
			"no binder registered for shape family",
		)
	}

	expr, err := bind(r, s)
	if err != nil {
		return nil, err
	}

	Logger().Debug("shape bound",
		zap.String("shape", key),
		zap.String("expression", expr.String()))

	r.memo.Store(key, expr)
	return expr, nil
}

// MarshalerToken returns the binding-type token a shape contributes
// when it appears as an element of a parameterized shape. For the
// built-in families the token is the binding expression itself.
func (r *Resolver) MarshalerToken(s shape.Shape) (Expression, error) {
	return r.Bind(s)
}

func bindScalar(_ *Resolver, s shape.Shape) (Expression, error) {
	name, ok := scalarTokens[s.Kind]
	if !ok {
		return nil, errors.Contract(
			errors.PhaseBind,
			nil,
			s.String(),
			"scalar binder driven for a foreign shape",
		)
	}
	return Token{Name: name}, nil
}

// bindSegment composes the container binding purely from the element's
// marshaler token. The container never re-derives element behavior, so
// the binder set stays closed under composition: a new element family
// needs one registry entry and no container change.
func bindSegment(r *Resolver, s shape.Shape) (Expression, error) {
	if s.Elem == nil {
		return nil, errors.Contract(
			errors.PhaseBind,
			nil,
			s.String(),
			"segment shape without an element",
		)
	}
	elem, err := r.MarshalerToken(*s.Elem)
	if err != nil {
		return nil, err
	}
	return Call{Target: "marshaler.Segment", Args: []Expression{elem}}, nil
}
