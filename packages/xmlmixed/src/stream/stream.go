// Package stream provides the line cursor handed to every tokenizer mode.
//
// A StringStream covers exactly one line of text. A mode's token function
// advances Pos past the token it recognizes; the text between Start and Pos
// is the token. Positions are byte offsets into the line.
package stream

import (
	"strings"
	"unicode/utf8"

	"xmlmixed-go/packages/xmlmixed/src/core"
)

const (
	DefaultTabSize    = 4
	DefaultIndentUnit = 2
)

// StringStream is a cursor over a single line
type StringStream struct {
	String string
	Start  int
	Pos    int

	tabSize    int
	indentUnit int
	lineStart  int

	lastColumnPos   int
	lastColumnValue int
}

// New creates a StringStream over line
func New(line string, tabSize, indentUnit int) *StringStream {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	if indentUnit <= 0 {
		indentUnit = DefaultIndentUnit
	}
	return &StringStream{
		String:     line,
		tabSize:    tabSize,
		indentUnit: indentUnit,
	}
}

// Clone creates a copy of the stream
func (s *StringStream) Clone() *StringStream {
	c := *s
	return &c
}

// EOL reports whether the cursor is at the end of the line
func (s *StringStream) EOL() bool {
	return s.Pos >= len(s.String)
}

// SOL reports whether the cursor is at the start of the line
func (s *StringStream) SOL() bool {
	return s.Pos == s.lineStart
}

// Peek returns the next character without advancing, or CharEOF
func (s *StringStream) Peek() int {
	if s.EOL() {
		return core.CharEOF
	}
	r, _ := utf8.DecodeRuneInString(s.String[s.Pos:])
	return int(r)
}

// Next returns the next character and advances past it, or CharEOF
func (s *StringStream) Next() int {
	if s.EOL() {
		return core.CharEOF
	}
	r, size := utf8.DecodeRuneInString(s.String[s.Pos:])
	s.Pos += size
	return int(r)
}

// Eat advances past the next character if it equals ch
func (s *StringStream) Eat(ch int) bool {
	if !s.EOL() && s.Peek() == ch {
		s.Next()
		return true
	}
	return false
}

// EatFunc advances past the next character if it satisfies pred
func (s *StringStream) EatFunc(pred func(code int) bool) bool {
	if !s.EOL() && pred(s.Peek()) {
		s.Next()
		return true
	}
	return false
}

// EatWhile advances while pred holds and reports whether anything was eaten
func (s *StringStream) EatWhile(pred func(code int) bool) bool {
	start := s.Pos
	for s.EatFunc(pred) {
	}
	return s.Pos > start
}

// EatSpace advances past whitespace and reports whether anything was eaten
func (s *StringStream) EatSpace() bool {
	return s.EatWhile(core.IsWhitespace)
}

// SkipToEnd moves the cursor to the end of the line
func (s *StringStream) SkipToEnd() {
	s.Pos = len(s.String)
}

// SkipTo moves the cursor to the next occurrence of ch on the line
func (s *StringStream) SkipTo(ch int) bool {
	idx := strings.IndexRune(s.String[s.Pos:], rune(ch))
	if idx < 0 {
		return false
	}
	s.Pos += idx
	return true
}

// BackUp moves the cursor back by n bytes
func (s *StringStream) BackUp(n int) {
	s.Pos -= n
	if s.Pos < s.Start {
		s.Pos = s.Start
	}
}

// Match checks whether the text at the cursor starts with pattern and
// optionally consumes it.
func (s *StringStream) Match(pattern string, consume, caseInsensitive bool) bool {
	rest := s.String[s.Pos:]
	if len(rest) < len(pattern) {
		return false
	}
	head := rest[:len(pattern)]
	if head != pattern && !(caseInsensitive && core.EqualFoldASCII(head, pattern)) {
		return false
	}
	if consume {
		s.Pos += len(pattern)
	}
	return true
}

// Current returns the text of the token in progress
func (s *StringStream) Current() string {
	return s.String[s.Start:s.Pos]
}

// Rest returns the unscanned remainder of the line
func (s *StringStream) Rest() string {
	return s.String[s.Pos:]
}

// Column returns the visual column of the token start
func (s *StringStream) Column() int {
	if s.lastColumnPos < s.Start {
		s.lastColumnValue = CountColumn(s.String, s.Start, s.tabSize, s.lastColumnPos, s.lastColumnValue)
		s.lastColumnPos = s.Start
	}
	return s.lastColumnValue - CountColumn(s.String, s.lineStart, s.tabSize, 0, 0)
}

// Indentation returns the visual width of the line's leading whitespace
func (s *StringStream) Indentation() int {
	return CountColumn(s.String, -1, s.tabSize, 0, 0) - CountColumn(s.String, s.lineStart, s.tabSize, 0, 0)
}

// IndentUnit returns the configured indentation step
func (s *StringStream) IndentUnit() int {
	return s.indentUnit
}

// TabSize returns the configured tab width
func (s *StringStream) TabSize() int {
	return s.tabSize
}

// CountColumn computes the visual column at byte offset end of text. When
// end is negative it measures the leading whitespace of text instead.
func CountColumn(text string, end, tabSize, startIndex, startValue int) int {
	if end < 0 {
		end = len(text) - len(strings.TrimLeft(text, " \t"))
	}
	n := startValue
	for i := startIndex; i < end && i < len(text); {
		if text[i] == '\t' {
			n += tabSize - n%tabSize
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		n++
	}
	return n
}
