package langs

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// CalcName is the registry name of the calc mode
const CalcName = "calc"

var calcKeywords = map[string]bool{
	"let": true, "if": true, "then": true, "else": true,
}

// Calc tokenizes arithmetic expressions: numbers, identifiers, operators,
// parentheses, quoted strings and `#` line comments.
type Calc struct {
	indentUnit int
}

// CalcState is the private state of Calc
type CalcState struct {
	baseIndent int
	depth      int
	quote      int
}

// Copy implements modes.State
func (s *CalcState) Copy() modes.State {
	c := *s
	return &c
}

var (
	_ modes.Mode     = (*Calc)(nil)
	_ modes.Indenter = (*Calc)(nil)
)

// NewCalc creates a Calc mode
func NewCalc(indentUnit int) *Calc {
	return &Calc{indentUnit: defaultIndentUnit(indentUnit)}
}

func newCalcFromOptions(_ *modes.Registry, options map[string]any) (modes.Mode, error) {
	unit, err := intOption(options, "indentUnit", 0)
	if err != nil {
		return nil, err
	}
	return NewCalc(unit), nil
}

// Name implements modes.Mode
func (c *Calc) Name() string {
	return CalcName
}

// StartState implements modes.Mode
func (c *Calc) StartState(baseIndent int) modes.State {
	return &CalcState{baseIndent: baseIndent}
}

// CopyState implements modes.Mode
func (c *Calc) CopyState(st modes.State) modes.State {
	return st.Copy()
}

// Token implements modes.Mode
func (c *Calc) Token(s *stream.StringStream, state modes.State) string {
	st := state.(*CalcState)
	if st.quote != 0 {
		return c.inString(s, st)
	}
	if s.EatSpace() {
		return ""
	}

	ch := s.Next()
	switch {
	case core.IsDigit(ch) || (ch == core.CharPERIOD && core.IsDigit(s.Peek())):
		s.EatWhile(core.IsDigit)
		if s.Eat(core.CharPERIOD) {
			s.EatWhile(core.IsDigit)
		}
		if s.Eat('e') || s.Eat('E') {
			if !s.Eat(core.CharPLUS) {
				s.Eat(core.CharMINUS)
			}
			s.EatWhile(core.IsDigit)
		}
		return "number"
	case core.IsAsciiLetter(ch) || ch == core.CharUnderscore:
		s.EatWhile(core.IsWordChar)
		if calcKeywords[s.Current()] {
			return "keyword"
		}
		return "variable"
	case core.IsQuote(ch):
		st.quote = ch
		return c.inString(s, st)
	case ch == core.CharHASH:
		s.SkipToEnd()
		return "comment"
	case ch == core.CharLPAREN:
		st.depth++
		return "bracket"
	case ch == core.CharRPAREN:
		if st.depth > 0 {
			st.depth--
		}
		return "bracket"
	case isCalcOperator(ch):
		s.EatWhile(isCalcOperator)
		return "operator"
	}
	return "error"
}

func (c *Calc) inString(s *stream.StringStream, st *CalcState) string {
	for !s.EOL() {
		if s.Next() == st.quote {
			st.quote = 0
			break
		}
	}
	return "string"
}

func isCalcOperator(code int) bool {
	return strings.ContainsRune("+-*/%^=<>!,:", rune(code))
}

// Indent implements modes.Indenter
func (c *Calc) Indent(state modes.State, textAfter, _ string) (int, bool) {
	st := state.(*CalcState)
	if st.quote != 0 {
		return modes.Pass()
	}
	depth := st.depth
	if strings.HasPrefix(strings.TrimSpace(textAfter), ")") && depth > 0 {
		depth--
	}
	return st.baseIndent + depth*c.indentUnit, true
}
