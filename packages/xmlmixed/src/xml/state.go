package xml

import "xmlmixed-go/packages/xmlmixed/src/modes"

// tokenizerKind selects which scanner reads the next token
type tokenizerKind int

const (
	tokText tokenizerKind = iota
	tokTag
	tokAttribute
	tokBlock
	tokDoctype
)

type tokenizer struct {
	kind       tokenizerKind
	quote      int
	style      string
	terminator string
	depth      int
}

var textTokenizer = tokenizer{kind: tokText}

// parserState tracks where the last token left us inside markup
type parserState int

const (
	baseState parserState = iota
	tagNameState
	closeTagNameState
	closeState
	closeStateErr
	attrState
	attrEqState
	attrValueState
	attrContinuedState
)

// tagContext is one open element. Contexts are never mutated once pushed,
// so copies of a State share them.
type tagContext struct {
	prev        *tagContext
	tagName     string
	indent      int
	startOfLine bool
	noIndent    bool
}

// State is the private state of the XML mode
type State struct {
	tokenize       tokenizer
	state          parserState
	indented       int
	tagName        string
	tagStart       int
	context        *tagContext
	baseIndent     int
	stringStartCol int
}

// Copy implements modes.State
func (s *State) Copy() modes.State {
	c := *s
	return &c
}

func (s *State) popContext() {
	if s.context != nil {
		s.context = s.context.prev
	}
}

func (s *State) resetTag() {
	s.tagName = ""
	s.tagStart = -1
}
