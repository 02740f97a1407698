// Package modes defines the tokenizer capability shared by the outer XML
// tokenizer and every embedded language, plus the registry that resolves
// mode descriptors into capabilities.
package modes

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// State is the private, mutable state of a mode. Copy must return an
// independent deep copy.
type State interface {
	Copy() State
}

// Mode is a line-oriented tokenizer.
//
// Token reads one token from s, advancing s.Pos, and returns its style.
// An empty style is the null classification. Token may return without
// advancing only to ask the caller to call it again at the same position.
type Mode interface {
	Name() string
	StartState(baseIndent int) State
	Token(s *stream.StringStream, st State) string
	CopyState(st State) State
}

// Indenter is implemented by modes that can compute indentation. The
// boolean result is false when the mode defers to the host default.
type Indenter interface {
	Indent(st State, textAfter, line string) (int, bool)
}

// Pass is the result an Indenter returns to defer to the host default.
func Pass() (int, bool) {
	return 0, false
}

// TagNamer is implemented by markup modes that know the name of the start
// tag currently being tokenized.
type TagNamer interface {
	CurrentTagName(st State) (string, bool)
}

// InnerModer is implemented by modes that delegate part of their input to
// another mode and can report which one is active.
type InnerModer interface {
	InnerMode(st State) (Mode, State)
}

// Spec is a structured mode descriptor: a registered name plus options
// forwarded to the mode factory.
type Spec struct {
	Name    string
	Options map[string]any
}

// HasStyle reports whether the space-separated style list contains word.
func HasStyle(style, word string) bool {
	for _, s := range strings.Fields(style) {
		if s == word {
			return true
		}
	}
	return false
}

// ResolveInner follows InnerMode links down to the innermost mode.
func ResolveInner(mode Mode, st State) (Mode, State) {
	for {
		im, ok := mode.(InnerModer)
		if !ok {
			return mode, st
		}
		inner, innerState := im.InnerMode(st)
		if inner == nil || (inner == mode && innerState == st) {
			return mode, st
		}
		mode, st = inner, innerState
	}
}
