// Package config loads the TOML interop manifest driving stub
// generation.
//
// A manifest declares functions with their stub direction, parameter
// shapes, and annotations:
//
//	[[function]]
//	name = "exchange"
//	direction = "caller"
//	frame_bounded = true
//	return = "s64"
//
//	  [[function.param]]
//	  name = "c"
//	  type = "char16"
//	  byref = true
//
//	[[function]]
//	name = "fill"
//	surface = "binding"
//
//	  [[function.param]]
//	  name = "buf"
//	  type = "segment<u16>"
//
// Stub-surface functions feed the staged builder; binding-surface
// functions feed the declarative resolver.
package config
