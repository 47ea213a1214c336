package ades

// Message is a conclusion note: a message tag and its rendered text.
type Message struct {
	Key   MessageTag `json:"key"`
	Value string     `json:"value"`
}

// Conclusion is the verdict of a building block or a validation process.
type Conclusion struct {
	Indication    Indication    `json:"indication"`
	SubIndication SubIndication `json:"subIndication,omitempty"`
	Errors        []Message     `json:"errors,omitempty"`
	Warnings      []Message     `json:"warnings,omitempty"`
	Infos         []Message     `json:"infos,omitempty"`
}

// NewConclusion creates a PASSED conclusion.
func NewConclusion() *Conclusion {
	return &Conclusion{Indication: IndicationPassed}
}

// NewFailedConclusion creates a conclusion with the given verdict.
func NewFailedConclusion(indication Indication, sub SubIndication) *Conclusion {
	c := &Conclusion{}
	c.Set(indication, sub)
	return c
}

// Set sets the indication and sub-indication together. A PASSED indication
// always clears the sub-indication.
func (c *Conclusion) Set(indication Indication, sub SubIndication) {
	c.Indication = indication
	if indication.IsPassed() {
		c.SubIndication = SubIndicationNone
		return
	}
	c.SubIndication = sub
}

// AddError adds an error to the conclusion.
func (c *Conclusion) AddError(m Message) {
	c.Errors = append(c.Errors, m)
}

// AddWarning adds a warning to the conclusion.
func (c *Conclusion) AddWarning(m Message) {
	c.Warnings = append(c.Warnings, m)
}

// AddInfo adds information to the conclusion.
func (c *Conclusion) AddInfo(m Message) {
	c.Infos = append(c.Infos, m)
}

// IsPassed returns true if the indication is PASSED.
func (c *Conclusion) IsPassed() bool {
	return c != nil && c.Indication.IsPassed()
}

// IsFailed returns true if the indication is FAILED.
func (c *Conclusion) IsFailed() bool {
	return c != nil && c.Indication.IsFailed()
}

// IsIndeterminate returns true if the indication is INDETERMINATE.
func (c *Conclusion) IsIndeterminate() bool {
	return c != nil && c.Indication == IndicationIndeterminate
}

// Clone returns a deep copy of the conclusion.
func (c *Conclusion) Clone() *Conclusion {
	if c == nil {
		return nil
	}
	out := &Conclusion{Indication: c.Indication, SubIndication: c.SubIndication}
	out.Errors = append([]Message(nil), c.Errors...)
	out.Warnings = append([]Message(nil), c.Warnings...)
	out.Infos = append([]Message(nil), c.Infos...)
	return out
}

// MergeNotes appends the notes of other that are not yet present.
// Errors are only merged when withErrors is set.
func (c *Conclusion) MergeNotes(other *Conclusion, withErrors bool) {
	if other == nil {
		return
	}
	if withErrors {
		c.Errors = appendUnique(c.Errors, other.Errors)
	}
	c.Warnings = appendUnique(c.Warnings, other.Warnings)
	c.Infos = appendUnique(c.Infos, other.Infos)
}

// Adopt takes over the verdict and every note of other. Used when a
// process inherits the conclusion of the block that decided it.
func (c *Conclusion) Adopt(other *Conclusion) {
	if other == nil {
		return
	}
	c.Set(other.Indication, other.SubIndication)
	c.MergeNotes(other, true)
}

// HasError reports whether an error with the given key is present.
func (c *Conclusion) HasError(key MessageTag) bool {
	return containsKey(c.Errors, key)
}

// HasWarning reports whether a warning with the given key is present.
func (c *Conclusion) HasWarning(key MessageTag) bool {
	return containsKey(c.Warnings, key)
}

// HasInfo reports whether an info with the given key is present.
func (c *Conclusion) HasInfo(key MessageTag) bool {
	return containsKey(c.Infos, key)
}

func containsKey(list []Message, key MessageTag) bool {
	for _, m := range list {
		if m.Key == key {
			return true
		}
	}
	return false
}

func appendUnique(dst, src []Message) []Message {
	for _, m := range src {
		dup := false
		for _, d := range dst {
			if d == m {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, m)
		}
	}
	return dst
}

// Worse reports whether a is a strictly worse conclusion than b.
// Indication severity decides first, then sub-indication precedence.
func Worse(a, b *Conclusion) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return !a.IsPassed()
	}
	sa, sb := a.Indication.severity(), b.Indication.severity()
	if sa != sb {
		return sa > sb
	}
	if sa == 0 {
		return false
	}
	return a.SubIndication.Rank() < b.SubIndication.Rank()
}

// WorstOf returns the worst of the given conclusions. Among equally bad
// conclusions the first one wins. Nil entries are ignored; with no input
// a PASSED conclusion is returned.
func WorstOf(conclusions ...*Conclusion) *Conclusion {
	var worst *Conclusion
	for _, c := range conclusions {
		if c == nil {
			continue
		}
		if worst == nil || Worse(c, worst) {
			worst = c
		}
	}
	if worst == nil {
		return NewConclusion()
	}
	return worst
}
