package marshal

import (
	"github.com/wippyai/stubgen/errors"
	"github.com/wippyai/stubgen/shape"
)

// ByValueKind is the in/out/in-out annotation controlling whether the
// contents of a by-value aggregate are copied into, out of, or both
// across the native call.
type ByValueKind uint8

const (
	// ByValueDefault means no annotation was written.
	ByValueDefault ByValueKind = iota
	ByValueIn
	ByValueOut
	ByValueInOut
)

var byValueNames = [...]string{
	ByValueDefault: "default",
	ByValueIn:      "in",
	ByValueOut:     "out",
	ByValueInOut:   "inout",
}

func (k ByValueKind) String() string {
	if int(k) < len(byValueNames) {
		return byValueNames[k]
	}
	return "unknown"
}

// Support is the answer to a by-value marshal-kind capability query.
// Unsupported answers carry a structured diagnostic explaining why; the
// diagnostic is advisory and never aborts generation for sibling values.
type Support struct {
	Supported  bool
	Diagnostic *errors.Error
}

// Supported is the affirmative capability answer.
var Supported = Support{Supported: true}

// supportMatrix is the shared capability table keyed by (family, kind).
// Built once before any generation pass; no runtime mutation path
// exists. Scalar and character values are copied whole, so contents
// annotations beyond the default/in pair carry no meaning for them.
// Segment contents can be copied either way.
var supportMatrix = map[shape.Family]map[ByValueKind]bool{
	shape.FamilyScalar: {
		ByValueDefault: true,
		ByValueIn:      true,
	},
	shape.FamilyChar: {
		ByValueDefault: true,
		ByValueIn:      true,
	},
	shape.FamilySegment: {
		ByValueDefault: true,
		ByValueIn:      true,
		ByValueOut:     true,
		ByValueInOut:   true,
	},
}

// supportsByValueKind consults the shared matrix for a family.
func supportsByValueKind(kind ByValueKind, family shape.Family, info TypePositionInfo) Support {
	if supportMatrix[family][kind] {
		return Supported
	}
	return Support{
		Diagnostic: errors.UnsupportedKind([]string{info.Identifier}, kind.String(), family.String()),
	}
}
