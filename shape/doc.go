// Package shape models the managed-side type of a value crossing the
// interop boundary.
//
// A Shape is a small immutable tree: builtin scalar kinds, the UTF-16
// code unit kind, segment<T> containers, and named struct/custom shapes.
// Marshaller dispatch is keyed by Kind and grouped into families
// (scalar, char, segment, struct, custom).
//
// Shapes enter the system from two front ends:
//
//   - Parse reads the manifest syntax used by stub configuration files
//     ("u32", "char16", "segment<u16>", "struct point").
//   - FromWIT bridges WIT type descriptions into shapes for components
//     whose signatures come from a WIT world.
//
// Shapes are plain values; comparing or copying them is cheap and they
// are safe to share across concurrent generation passes.
package shape
