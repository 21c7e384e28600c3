// Package marshal is the marshalling-generator engine: for each value
// crossing the managed/unmanaged call boundary it decides how the value
// is represented on each side and produces the operations converting it
// safely.
//
// # Model
//
// Three read-only inputs drive every decision:
//
//	TypePositionInfo  what is being marshalled (shape, by-ref, position)
//	StubCodeContext   where it is being marshalled (stub direction,
//	                  frame-bounded flag, return position)
//	Stage             which phase of the stub is being produced
//
// A Generator is the polymorphic unit of work, one per type-shape
// family. The driver resolves a generator through the Registry, asks it
// boundary and signature questions, then drives it through the stages:
//
//	Setup → Pin → Marshal → Unmarshal → Cleanup
//
// in that fixed order, exactly once each per stub. Operations within a
// stage execute in emission order; no operation spans stages.
//
// # Direction
//
// The effective data-flow of a value is derived, never set: the declared
// in/out/inout annotation combines with the stub direction through
// ResolveDirection. Marshal-stage output exists only for flows into the
// native side, Unmarshal-stage output only for flows out of it.
//
// # Pinning fast path
//
// A by-reference scalar or character value whose frame is guaranteed not
// to outlive the native call, and which is not in return position, is
// pinned instead of copied: the Pin stage emits one scoped pin-and-cast
// producing a native-typed alias over the managed storage, and Setup,
// Marshal, and Unmarshal stay empty. Aliasing is correct because the
// pinned address stays valid for the call's duration, and it is strictly
// faster than the copy path. Pinning outranks by-value marshal-kind
// annotations.
//
// # Failure classes
//
// Handing a generator a shape outside its family is a contract violation
// (errors.KindContract): fatal to the stub, never user-facing, enforced
// at registry-dispatch time. A by-value marshal kind the resolved
// generator does not honor produces an advisory diagnostic through
// SupportsByValueMarshalKind; sibling values keep generating.
//
// # Purity
//
// Generators hold no state. Every method is a pure function of its
// inputs, so generation passes for independent stubs may run
// concurrently against one shared Registry.
package marshal
