// Package editor is a small host for line-oriented modes: it keeps a
// document as lines, caches the mode state at the start of each line, and
// answers token, indentation and folding queries.
package editor

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/util"
)

// maxStalls is how many times in a row a mode may return without
// advancing before the host forces the stream forward
const maxStalls = 10

// Token is one token of a line
type Token struct {
	Line  int
	Start int
	End   int
	Style string
	Text  string
}

// Options configures a Document
type Options struct {
	TabSize    int
	IndentUnit int
	// Registry supplies fold helpers.
	Registry *modes.Registry
}

// Document is a text buffer tokenized by a mode. It is not safe for
// concurrent use.
type Document struct {
	mode     modes.Mode
	lines    []string
	states   []modes.State
	registry *modes.Registry

	tabSize    int
	indentUnit int
}

var _ modes.Document = (*Document)(nil)

// New creates a Document over text
func New(mode modes.Mode, text string, opts Options) *Document {
	d := &Document{
		mode:       mode,
		lines:      SplitLines(text),
		registry:   opts.Registry,
		tabSize:    opts.TabSize,
		indentUnit: opts.IndentUnit,
	}
	if d.tabSize <= 0 {
		d.tabSize = stream.DefaultTabSize
	}
	if d.indentUnit <= 0 {
		d.indentUnit = stream.DefaultIndentUnit
	}
	return d
}

// SplitLines splits text on LF, CRLF or CR
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Mode returns the document's mode
func (d *Document) Mode() modes.Mode {
	return d.mode
}

// Line returns the text of line n, or "" when n is out of range
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return d.lines[n]
}

// LastLine returns the index of the last line
func (d *Document) LastLine() int {
	return len(d.lines) - 1
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Text returns the document joined with LF
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// SetLine replaces the text of line n
func (d *Document) SetLine(n int, text string) {
	if n < 0 || n >= len(d.lines) {
		return
	}
	d.lines[n] = text
	d.invalidate(n)
}

// InsertLines inserts lines before line at
func (d *Document) InsertLines(at int, lines ...string) {
	if at < 0 {
		at = 0
	}
	if at > len(d.lines) {
		at = len(d.lines)
	}
	next := make([]string, 0, len(d.lines)+len(lines))
	next = append(next, d.lines[:at]...)
	next = append(next, lines...)
	next = append(next, d.lines[at:]...)
	d.lines = next
	d.invalidate(at)
}

// DeleteLines removes lines [from, to)
func (d *Document) DeleteLines(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(d.lines) {
		to = len(d.lines)
	}
	if from >= to {
		return
	}
	d.lines = append(d.lines[:from], d.lines[to:]...)
	if len(d.lines) == 0 {
		d.lines = []string{""}
	}
	d.invalidate(from)
}

// invalidate drops cached states that depend on line n. The state at the
// start of line n only depends on earlier lines, so it is kept.
func (d *Document) invalidate(n int) {
	if len(d.states) > n+1 {
		d.states = d.states[:n+1]
	}
}

// StateBefore returns a copy of the mode state at the start of line n
func (d *Document) StateBefore(n int) modes.State {
	if n > len(d.lines) {
		n = len(d.lines)
	}
	if len(d.states) == 0 {
		d.states = append(d.states, d.mode.StartState(0))
	}
	for len(d.states) <= n {
		i := len(d.states) - 1
		st := d.states[i].Copy()
		d.runLine(i, st, nil)
		d.states = append(d.states, st)
	}
	return d.states[n].Copy()
}

// runLine tokenizes line n starting from st, which it advances. emit, when
// set, receives every token; returning false stops the run early.
func (d *Document) runLine(n int, st modes.State, emit func(Token, *stream.StringStream) bool) {
	text := d.Line(n)
	s := stream.New(text, d.tabSize, d.indentUnit)
	for !s.EOL() {
		s.Start = s.Pos
		style := d.readToken(s, st)
		if emit != nil && !emit(Token{Line: n, Start: s.Start, End: s.Pos, Style: style, Text: s.Current()}, s) {
			return
		}
	}
}

// readToken calls the mode until it advances. A mode that keeps returning
// without progress is stepped over one character, unstyled.
func (d *Document) readToken(s *stream.StringStream, st modes.State) string {
	for i := 0; i < maxStalls; i++ {
		style := d.mode.Token(s, st)
		if s.Pos > s.Start {
			return style
		}
	}
	s.Next()
	return ""
}

// LineTokens tokenizes line n
func (d *Document) LineTokens(n int) []Token {
	var tokens []Token
	d.runLine(n, d.StateBefore(n), func(tok Token, _ *stream.StringStream) bool {
		tokens = append(tokens, tok)
		return true
	})
	return tokens
}

// Tokens tokenizes the whole document
func (d *Document) Tokens() [][]Token {
	out := make([][]Token, len(d.lines))
	for n := range d.lines {
		out[n] = d.LineTokens(n)
	}
	return out
}

// TokenAt returns the token that ends at or after pos.Ch on its line, and
// the mode state right after it.
func (d *Document) TokenAt(pos util.Position) (Token, modes.State, bool) {
	st := d.StateBefore(pos.Line)
	var found Token
	ok := false
	d.runLine(pos.Line, st, func(tok Token, _ *stream.StringStream) bool {
		found, ok = tok, true
		return tok.End < pos.Ch
	})
	return found, st, ok
}

// TokenTypeAt returns the style of the token covering the character before
// pos.Ch, or of the first token when pos.Ch is 0.
func (d *Document) TokenTypeAt(pos util.Position) string {
	tok, _, ok := d.TokenAt(pos)
	if !ok {
		return ""
	}
	return tok.Style
}

// ModeAt returns the innermost mode that produced the token at pos
func (d *Document) ModeAt(pos util.Position) modes.Mode {
	_, st, ok := d.TokenAt(pos)
	if !ok {
		mode, _ := modes.ResolveInner(d.mode, d.StateBefore(pos.Line))
		return mode
	}
	mode, _ := modes.ResolveInner(d.mode, st)
	return mode
}

// IndentationFor computes the indentation of line n. When the mode defers,
// the previous line's indentation is used.
func (d *Document) IndentationFor(n int) int {
	text := d.Line(n)
	if indenter, ok := d.mode.(modes.Indenter); ok {
		textAfter := strings.TrimLeft(text, " \t")
		if col, ok := indenter.Indent(d.StateBefore(n), textAfter, text); ok {
			return col
		}
	}
	if n == 0 {
		return 0
	}
	return stream.CountColumn(d.Line(n-1), -1, d.tabSize, 0, 0)
}

// FoldAt asks each applicable fold helper for a range starting at pos
func (d *Document) FoldAt(pos util.Position) (util.Range, bool) {
	if d.registry == nil {
		return util.Range{}, false
	}
	for _, helper := range d.registry.FoldHelpers(d.mode) {
		if r, ok := helper.Fold(d, pos); ok {
			return r, true
		}
	}
	return util.Range{}, false
}
