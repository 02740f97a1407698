package langs

import (
	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// TextName is the registry name of the text mode
const TextName = "text"

// Text styles every run of non-space characters as "text". It cannot
// indent.
type Text struct{}

type textState struct{}

func (textState) Copy() modes.State { return textState{} }

// NewText creates a Text mode
func NewText() *Text {
	return &Text{}
}

// Name implements modes.Mode
func (t *Text) Name() string { return TextName }

// StartState implements modes.Mode
func (t *Text) StartState(int) modes.State { return textState{} }

// CopyState implements modes.Mode
func (t *Text) CopyState(st modes.State) modes.State { return st.Copy() }

// Token implements modes.Mode
func (t *Text) Token(s *stream.StringStream, _ modes.State) string {
	if s.EatSpace() {
		return ""
	}
	s.EatWhile(func(code int) bool { return !core.IsWhitespace(code) })
	return "text"
}
