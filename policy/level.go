// Package policy provides the validation policy model: a tree of levelled
// constraints scoped by validation context, plus cryptographic constraints.
package policy

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Level is the configured severity of a constraint.
type Level string

const (
	// LevelIgnore means the constraint is absent and its check is skipped.
	LevelIgnore Level = ""
	// LevelInform turns a failed check into an info note.
	LevelInform Level = "INFORM"
	// LevelWarn turns a failed check into a warning note.
	LevelWarn Level = "WARN"
	// LevelFail turns a failed check into an error and a non-PASSED indication.
	LevelFail Level = "FAIL"
)

// IsSet returns true if the level is not absent.
func (l Level) IsSet() bool {
	return l != LevelIgnore
}

// String returns the string representation of the level.
func (l Level) String() string {
	if l == LevelIgnore {
		return "IGNORE"
	}
	return string(l)
}

// ParseLevel parses a level name. IGNORE and the empty string both mean absent.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "IGNORE":
		return LevelIgnore, nil
	case "INFORM":
		return LevelInform, nil
	case "WARN":
		return LevelWarn, nil
	case "FAIL":
		return LevelFail, nil
	}
	return LevelIgnore, fmt.Errorf("unknown level %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = parsed
	return nil
}

// Date is a calendar date in UTC, written as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate creates a date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q", value.Line, value.Value)
	}
	d.Time = t
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}
