// Package stub assembles call-stub programs from the marshalling
// generator engine.
//
// # Assembly
//
// For one function, Builder.Build resolves each value's generator
// through the marshal registry, records the boundary and signature
// decisions, declares a native local for every value that needs one,
// and then drives all generators through the stages
//
//	Setup → Pin → Marshal → Unmarshal → Cleanup
//
// in fixed order, exactly once each. The resulting Program carries the
// flat core signature (wazero value types for the 32-bit native ABI),
// the native local declarations, and the per-stage operation lists.
// Program.Flatten interleaves them into one execution-ordered stream
// with the invoke marker between the pre- and post-call stages.
//
// # Failure semantics
//
// A contract violation on any descriptor fails the whole stub as a
// unit; no partial program is returned. Capability diagnostics
// accumulate on the program and never suppress sibling values.
//
// # Parallelism
//
// Stubs for independent functions share no state beyond the read-only
// registry, so Driver.GenerateAll fans them out across an errgroup.
// Stages within one stub are never reordered or parallelized.
//
// # Caching
//
// Cache round-trips programs through msgpack keyed by a hash of every
// assembly input, letting the CLI skip regeneration of unchanged
// functions.
package stub
