package shape

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/stubgen/errors"
)

// FromWIT bridges a WIT type description into a managed shape. The host
// runtime represents characters as UTF-16 code units and strings as
// segments of code units; surrogate expansion happens before values reach
// the marshalling layer.
func FromWIT(t wit.Type) (Shape, error) {
	switch wt := t.(type) {
	case wit.Bool:
		return Scalar(KindBool), nil
	case wit.U8:
		return Scalar(KindU8), nil
	case wit.S8:
		return Scalar(KindS8), nil
	case wit.U16:
		return Scalar(KindU16), nil
	case wit.S16:
		return Scalar(KindS16), nil
	case wit.U32:
		return Scalar(KindU32), nil
	case wit.S32:
		return Scalar(KindS32), nil
	case wit.U64:
		return Scalar(KindU64), nil
	case wit.S64:
		return Scalar(KindS64), nil
	case wit.F32:
		return Scalar(KindF32), nil
	case wit.F64:
		return Scalar(KindF64), nil
	case wit.Char:
		return Char16(), nil
	case wit.String:
		return Segment(Char16()), nil
	case *wit.TypeDef:
		return fromTypeDef(wt)
	default:
		return Shape{}, errors.New(errors.PhaseConfig, errors.KindUnknownShape).
			Detail("unsupported WIT type %T", t).
			Build()
	}
}

func fromTypeDef(td *wit.TypeDef) (Shape, error) {
	switch kind := td.Kind.(type) {
	case *wit.List:
		elem, err := FromWIT(kind.Type)
		if err != nil {
			return Shape{}, err
		}
		return Segment(elem), nil
	case *wit.Record:
		name := "record"
		if td.Name != nil {
			name = *td.Name
		}
		return Struct(name), nil
	case wit.Type:
		// Named alias of another type.
		return FromWIT(kind)
	default:
		return Shape{}, errors.New(errors.PhaseConfig, errors.KindUnknownShape).
			Detail("unsupported WIT type definition %T", td.Kind).
			Build()
	}
}
