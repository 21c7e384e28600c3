package shape

// Kind identifies a managed type-shape family member.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
	KindChar16
	KindSegment
	KindStruct
	KindCustom
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindU8:      "u8",
	KindS8:      "s8",
	KindU16:     "u16",
	KindS16:     "s16",
	KindU32:     "u32",
	KindS32:     "s32",
	KindU64:     "u64",
	KindS64:     "s64",
	KindF32:     "f32",
	KindF64:     "f64",
	KindChar16:  "char16",
	KindSegment: "segment",
	KindStruct:  "struct",
	KindCustom:  "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind is a fixed-width numeric scalar.
// Char16 is excluded: it shares the scalar staging but carries UTF-16
// reinterpretation semantics and its own marshaller family.
func (k Kind) IsScalar() bool {
	return k <= KindF64
}

// IsPinnable reports whether a by-reference value of this kind may take
// the pinning fast path.
func (k Kind) IsPinnable() bool {
	return k.IsScalar() || k == KindChar16
}

// Family groups kinds into marshaller families. The by-value support
// matrix and the registry are keyed by family.
type Family uint8

const (
	FamilyScalar Family = iota
	FamilyChar
	FamilySegment
	FamilyStruct
	FamilyCustom
)

var familyNames = [...]string{
	FamilyScalar:  "scalar",
	FamilyChar:    "char",
	FamilySegment: "segment",
	FamilyStruct:  "struct",
	FamilyCustom:  "custom",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return "unknown"
}

// Family returns the marshaller family owning this kind.
func (k Kind) Family() Family {
	switch {
	case k.IsScalar():
		return FamilyScalar
	case k == KindChar16:
		return FamilyChar
	case k == KindSegment:
		return FamilySegment
	case k == KindStruct:
		return FamilyStruct
	default:
		return FamilyCustom
	}
}
