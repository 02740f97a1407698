package xmlmixed

import "xmlmixed-go/packages/xmlmixed/src/modes"

// Stage names the tokenizer currently driving a State
type Stage int

const (
	StageOuter Stage = iota
	StageInner
)

func (s Stage) String() string {
	if s == StageInner {
		return "inner"
	}
	return "outer"
}

// State is the complete tokenizer state of the mixed mode. tag and
// localMode are set together, and only in StageInner; cdata is only ever
// true in StageInner.
type State struct {
	stage      Stage
	xmlState   modes.State
	acc        tagAccumulator
	tag        *Tag
	localMode  modes.Mode
	localState modes.State
	cdata      bool
	cdataEaten bool
}

// Copy returns an independent copy of the state. The outer and embedded
// states are deep-copied through their own Copy; the immutable Tag and the
// mode values are shared.
func (s *State) Copy() modes.State {
	c := *s
	if s.xmlState != nil {
		c.xmlState = s.xmlState.Copy()
	}
	if s.localState != nil && s.localMode != nil {
		c.localState = s.localMode.CopyState(s.localState)
	}
	return &c
}

// Stage reports which tokenizer handles the next token
func (s *State) Stage() Stage {
	return s.stage
}

// Tag returns the tag whose body is being tokenized, or nil
func (s *State) Tag() *Tag {
	return s.tag
}

// InCdata reports whether the cursor is inside a CDATA section of an
// embedded region
func (s *State) InCdata() bool {
	return s.cdata
}

// OuterState returns the outer mode's private state
func (s *State) OuterState() modes.State {
	return s.xmlState
}

// Local returns the embedded mode and its state, or nils
func (s *State) Local() (modes.Mode, modes.State) {
	return s.localMode, s.localState
}

// PendingTag returns the text collected so far for an unterminated start
// tag
func (s *State) PendingTag() (string, bool) {
	return s.acc.buf, s.acc.active
}
