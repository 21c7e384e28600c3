// Package errors provides structured error types for the stub generator.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: value path,
// managed/native type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseGenerate, errors.KindContract).
//		Path("param", "buf").
//		ManagedType("segment<u16>").
//		Detail("scalar marshaller invoked on a container shape").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Contract(errors.PhaseGenerate, path, "segment<u16>", "...")
//	err := errors.UnsupportedKind(path, "inout", "scalar")
//
// All errors implement the standard error interface and support
// errors.Is/As.
//
// Two disjoint failure classes run through the generator:
//
//   - KindContract: the registry handed a descriptor to a generator that
//     does not own its shape. Fatal to the whole stub, never user-facing.
//   - KindUnsupportedKind: a by-value marshal-kind annotation the resolved
//     generator does not honor. Advisory and accumulative; sibling values
//     in the same stub still generate.
//
// IsContract distinguishes the two when the driver decides whether a stub
// fails as a unit.
package errors
