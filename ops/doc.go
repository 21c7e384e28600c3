// Package ops defines the operation values a marshalling generator
// produces for each stub stage.
//
// An Op is opaque to the generator core: generators only return data
// describing operations, they never execute them. Within one stage,
// emission order is execution order, and no op spans stages.
//
// The variant set is closed (declare, assign, pin_cast, invoke) and ops
// are flat serializable structs, so stub programs can round-trip through
// the msgpack cache unchanged.
package ops
