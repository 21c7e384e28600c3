// Package binding implements the declarative marshalling surface used
// by script-hosted interop: instead of a staged operation sequence, each
// shape resolves to a single composed binding expression invoking
// marshaler constructors.
//
// Parameterized shapes compose recursively. A segment's binding is its
// container constructor applied to the element's marshaler token, and
// the element token comes from resolving the element shape through the
// same registry:
//
//	segment<u32>           -> marshaler.Segment(marshaler.U32)
//	segment<segment<u32>>  -> marshaler.Segment(marshaler.Segment(marshaler.U32))
//
// Resolution is memoized, pure, and terminates for any concrete shape:
// one recursive step per nesting level.
package binding
