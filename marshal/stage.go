package marshal

// Stage is one phase of a stub's lifecycle. Stages execute in the fixed
// order returned by Stages, exactly once each per stub; a generator may
// contribute nothing to a stage.
type Stage uint8

const (
	StageSetup Stage = iota
	StagePin
	StageMarshal
	StageUnmarshal
	StageCleanup
)

var stageNames = [...]string{
	StageSetup:     "setup",
	StagePin:       "pin",
	StageMarshal:   "marshal",
	StageUnmarshal: "unmarshal",
	StageCleanup:   "cleanup",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Stages returns the stub lifecycle stages in execution order. Later
// stages read identifiers earlier stages produce, so the driver must
// never reorder or parallelize them within one stub.
func Stages() []Stage {
	return []Stage{StageSetup, StagePin, StageMarshal, StageUnmarshal, StageCleanup}
}
