// Package stubgen generates marshalling stubs for host/guest interop
// calls targeting a 32-bit native ABI.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	stubgen/        Root package with the manifest-to-programs facade
//	├── shape/      Managed type-shape model and front ends (manifest, WIT)
//	├── marshal/    Marshalling-generator engine: contracts, direction
//	│               resolution, pinning decision, scalar/char marshallers
//	├── ops/        Operation values produced per stub stage
//	├── binding/    Declarative marshaler-composition surface
//	├── stub/       Stage-driven assembly, parallel driver, program cache
//	├── emit/       Textual rendering of assembled stubs
//	├── config/     TOML interop manifest
//	└── errors/     Structured error types
//
// # Quick Start
//
// Load a manifest and generate every stub:
//
//	m, err := config.Load("interop.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := stubgen.Generate(context.Background(), m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, p := range result.Programs {
//	    fmt.Println(emit.Render(p))
//	}
//
// # Generation model
//
// Each value crossing the boundary is described by a TypePositionInfo
// and generated against a shared read-only StubCodeContext. A registry
// dispatches the value's shape to the marshaller family owning it, and
// the builder drives every marshaller through the fixed stage order
// Setup, Pin, Marshal, Unmarshal, Cleanup. By-reference scalar and
// character values in frame-bounded, non-return positions take a
// zero-copy pinning fast path.
//
// Container shapes cross the declarative surface instead: they resolve
// to composed binding expressions, with element marshalers recursively
// resolved through the same registry mechanism.
//
// # Thread Safety
//
// Registries and generators are immutable after construction and safe
// for concurrent passes. Stages within one stub are strictly ordered
// and never parallelized.
package stubgen
