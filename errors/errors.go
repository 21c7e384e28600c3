package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in stub generation the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // registry dispatch
	PhaseGenerate Phase = "generate" // per-stage operation production
	PhaseBind     Phase = "bind"     // declarative binding composition
	PhaseAssemble Phase = "assemble" // stub assembly
	PhaseRender   Phase = "render"   // textual emission
	PhaseConfig   Phase = "config"   // manifest loading
	PhaseCache    Phase = "cache"    // stub program cache
)

// Kind categorizes the error
type Kind string

const (
	// KindContract marks a programmer or registry error: a generator was
	// handed a shape it does not own, or the registry is missing an entry
	// for a shape the driver requested. Contract errors are fatal to the
	// generation run and are never surfaced as user diagnostics.
	KindContract Kind = "contract"

	KindUnsupportedKind Kind = "unsupported_kind"
	KindUnknownShape    Kind = "unknown_shape"
	KindInvalidInput    Kind = "invalid_input"
	KindInvalidData     Kind = "invalid_data"
	KindNotFound        Kind = "not_found"
	KindOverflow        Kind = "overflow"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value       any
	Cause       error
	Phase       Phase
	Kind        Kind
	ManagedType string
	NativeType  string
	Detail      string
	Path        []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.ManagedType != "" || e.NativeType != "" {
		b.WriteString(": ")
		if e.ManagedType != "" && e.NativeType != "" {
			b.WriteString("managed type ")
			b.WriteString(e.ManagedType)
			b.WriteString(", native type ")
			b.WriteString(e.NativeType)
		} else if e.ManagedType != "" {
			b.WriteString("managed type ")
			b.WriteString(e.ManagedType)
		} else {
			b.WriteString("native type ")
			b.WriteString(e.NativeType)
		}
	}

	if e.Detail != "" {
		if e.ManagedType != "" || e.NativeType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsContract reports whether err carries a contract violation anywhere in
// its cause chain. Drivers fail the whole stub when this is true.
func IsContract(err error) bool {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return false
		}
		if e.Kind == KindContract {
			return true
		}
		err = e.Cause
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the value path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// ManagedType sets the managed-side type name
func (b *Builder) ManagedType(t string) *Builder {
	b.err.ManagedType = t
	return b
}

// NativeType sets the native-side type name
func (b *Builder) NativeType(t string) *Builder {
	b.err.NativeType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Contract creates a contract-violation error for a generator invoked on a
// shape outside its family
func Contract(phase Phase, path []string, managedType, detail string) *Error {
	return &Error{
		Phase:       phase,
		Kind:        KindContract,
		Path:        path,
		ManagedType: managedType,
		Detail:      detail,
	}
}

// UnknownShape creates an unknown-shape error
func UnknownShape(phase Phase, path []string, shapeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownShape,
		Path:   path,
		Detail: fmt.Sprintf("no generator registered for shape %q", shapeName),
	}
}

// UnsupportedKind creates a capability diagnostic for a by-value marshal
// kind the resolved generator does not honor
func UnsupportedKind(path []string, kind, family string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindUnsupportedKind,
		Path:   path,
		Detail: fmt.Sprintf("by-value marshal kind %s is not supported by the %s marshaller", kind, family),
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Cause:  cause,
		Detail: detail,
	}
}
