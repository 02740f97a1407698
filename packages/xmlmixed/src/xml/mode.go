// Package xml implements the outer markup tokenizer: a line-oriented,
// resumable XML/HTML mode that classifies tags, attributes, strings,
// comments, CDATA, doctypes and entities, and tracks open elements for
// indentation.
package xml

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// Mode is the XML/HTML tokenizer
type Mode struct {
	cfg        config
	indentUnit int
}

var (
	_ modes.Mode     = (*Mode)(nil)
	_ modes.Indenter = (*Mode)(nil)
	_ modes.TagNamer = (*Mode)(nil)
)

// New creates a Mode from options. indentUnit is the width of one
// indentation level.
func New(opts Options, indentUnit int) *Mode {
	if indentUnit <= 0 {
		indentUnit = stream.DefaultIndentUnit
	}
	return &Mode{cfg: newConfig(opts), indentUnit: indentUnit}
}

// Name implements modes.Mode
func (m *Mode) Name() string {
	if m.cfg.htmlMode {
		return "html"
	}
	return "xml"
}

// StartState implements modes.Mode
func (m *Mode) StartState(baseIndent int) modes.State {
	return &State{
		tokenize:   textTokenizer,
		state:      baseState,
		indented:   baseIndent,
		tagStart:   -1,
		baseIndent: baseIndent,
	}
}

// CopyState implements modes.Mode
func (m *Mode) CopyState(st modes.State) modes.State {
	return st.Copy()
}

// call carries the per-token results the scanners hand to the parser
type call struct {
	s        *stream.StringStream
	st       *State
	typ      string
	setStyle string
}

// Token implements modes.Mode
func (m *Mode) Token(s *stream.StringStream, state modes.State) string {
	st := state.(*State)
	if st.tagName == "" && s.SOL() {
		st.indented = s.Indentation()
	}
	if s.EatSpace() {
		return ""
	}

	c := &call{s: s, st: st}
	style := m.tokenize(c)
	if (style != "" || c.typ != "") && style != "comment" {
		typ := c.typ
		if typ == "" {
			typ = style
		}
		st.state = m.parse(c, st.state, typ)
		if c.setStyle != "" {
			if c.setStyle == "error" {
				style = strings.TrimSpace(style + " error")
			} else {
				style = c.setStyle
			}
		}
	}
	return style
}

func (m *Mode) tokenize(c *call) string {
	switch c.st.tokenize.kind {
	case tokTag:
		return m.inTag(c)
	case tokAttribute:
		return m.inAttribute(c)
	case tokBlock:
		return m.inBlock(c)
	case tokDoctype:
		return m.inDoctype(c)
	default:
		return m.inText(c)
	}
}

func (m *Mode) chain(c *call, t tokenizer) string {
	c.st.tokenize = t
	return m.tokenize(c)
}

func (m *Mode) inText(c *call) string {
	s, st := c.s, c.st
	switch s.Next() {
	case core.CharLT:
		if s.Eat(core.CharBANG) {
			if s.Eat(core.CharLBRACKET) {
				if s.Match("CDATA[", true, false) {
					return m.chain(c, tokenizer{kind: tokBlock, style: "atom", terminator: "]]>"})
				}
				return ""
			} else if s.Match("--", true, false) {
				return m.chain(c, tokenizer{kind: tokBlock, style: "comment", terminator: "-->"})
			} else if s.Match("DOCTYPE", true, true) {
				s.EatWhile(core.IsNameChar)
				return m.chain(c, tokenizer{kind: tokDoctype, depth: 1})
			}
			return ""
		} else if s.Eat(core.CharQUESTION) {
			s.EatWhile(core.IsNameChar)
			st.tokenize = tokenizer{kind: tokBlock, style: "meta", terminator: "?>"}
			return "meta"
		}
		if s.Eat(core.CharSLASH) {
			c.typ = "closeTag"
		} else {
			c.typ = "openTag"
		}
		st.tokenize = tokenizer{kind: tokTag}
		return "tag bracket"
	case core.CharAMPERSAND:
		var ok bool
		if s.Eat(core.CharHASH) {
			if s.Eat(core.CharLowerX) {
				ok = s.EatWhile(core.IsAsciiHexDigit) && s.Eat(core.CharSEMICOLON)
			} else {
				ok = s.EatWhile(core.IsDigit) && s.Eat(core.CharSEMICOLON)
			}
		} else {
			ok = s.EatWhile(core.IsEntityNameChar) && s.Eat(core.CharSEMICOLON)
		}
		if ok {
			return "atom"
		}
		return "error"
	default:
		s.EatWhile(func(code int) bool {
			return code != core.CharAMPERSAND && code != core.CharLT
		})
		return ""
	}
}

func (m *Mode) inTag(c *call) string {
	s, st := c.s, c.st
	ch := s.Next()
	if ch == core.CharGT || (ch == core.CharSLASH && s.Eat(core.CharGT)) {
		st.tokenize = textTokenizer
		if ch == core.CharGT {
			c.typ = "endTag"
		} else {
			c.typ = "selfcloseTag"
		}
		return "tag bracket"
	}
	if ch == core.CharEQ {
		c.typ = "equals"
		return ""
	}
	if ch == core.CharLT {
		st.tokenize = textTokenizer
		st.state = baseState
		st.resetTag()
		if next := m.tokenize(c); next != "" {
			return next + " tag error"
		}
		return "tag error"
	}
	if core.IsQuote(ch) {
		st.tokenize = tokenizer{kind: tokAttribute, quote: ch}
		st.stringStartCol = s.Column()
		return m.tokenize(c)
	}
	eatTagWord(s)
	c.typ = "word"
	return ""
}

// eatTagWord consumes the longest run of tag word characters that does
// not end in a slash, so "/>" is left for the tag close.
func eatTagWord(s *stream.StringStream) {
	end := s.Pos
	for s.EatFunc(core.IsTagWordChar) {
		if s.String[s.Pos-1] != '/' {
			end = s.Pos
		}
	}
	s.Pos = end
}

func (m *Mode) inAttribute(c *call) string {
	s, st := c.s, c.st
	for !s.EOL() {
		if s.Next() == st.tokenize.quote {
			st.tokenize = tokenizer{kind: tokTag}
			break
		}
	}
	return "string"
}

func (m *Mode) inBlock(c *call) string {
	s, st := c.s, c.st
	style := st.tokenize.style
	for !s.EOL() {
		if s.Match(st.tokenize.terminator, true, false) {
			st.tokenize = textTokenizer
			break
		}
		s.Next()
	}
	return style
}

func (m *Mode) inDoctype(c *call) string {
	s, st := c.s, c.st
	for !s.EOL() {
		switch s.Next() {
		case core.CharLT:
			return m.chain(c, tokenizer{kind: tokDoctype, depth: st.tokenize.depth + 1})
		case core.CharGT:
			if st.tokenize.depth == 1 {
				st.tokenize = textTokenizer
				return "meta"
			}
			return m.chain(c, tokenizer{kind: tokDoctype, depth: st.tokenize.depth - 1})
		}
	}
	return "meta"
}
