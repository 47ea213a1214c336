package process

import (
	"fmt"
	"strings"
)

// ValidationLevel is the highest validation process to run. The zero value
// is not a level; Execute rejects it.
type ValidationLevel int

const (
	// BasicSignatures runs the building blocks of every signature.
	BasicSignatures ValidationLevel = iota + 1
	// Timestamps additionally validates every timestamp and evidence record.
	Timestamps
	// LongTermData re-judges signatures at their best-signature-time.
	LongTermData
	// ArchivalData extends the POE with archive timestamps and evidence
	// records and runs past signature validation.
	ArchivalData
)

var levelNames = map[ValidationLevel]string{
	BasicSignatures: "BASIC_SIGNATURES",
	Timestamps:      "TIMESTAMPS",
	LongTermData:    "LONG_TERM_DATA",
	ArchivalData:    "ARCHIVAL_DATA",
}

// String returns the string representation of the level.
func (l ValidationLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("ValidationLevel(%d)", int(l))
}

// IsValid reports whether l is one of the four levels.
func (l ValidationLevel) IsValid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseValidationLevel parses a level name. Matching is case-insensitive and
// accepts '-' for '_'.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	name := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown validation level %q", s)
}

// Levels returns the levels in execution order.
func Levels() []ValidationLevel {
	return []ValidationLevel{BasicSignatures, Timestamps, LongTermData, ArchivalData}
}
