package xmlmixed

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
)

// Tag is a parsed opening tag. Mode is the embedded mode its body is
// tokenized with; it is set before the tag is published to a State and the
// Tag is not modified afterwards.
type Tag struct {
	Name       string
	Attributes map[string]string
	Mode       modes.Mode
}

// Attr returns the value of an attribute
func (t *Tag) Attr(name string) (string, bool) {
	v, ok := t.Attributes[name]
	return v, ok
}

// tagAccumulator collects the text of an opening tag while the outer mode
// tokenizes it. active is set exactly while a start tag is unterminated.
type tagAccumulator struct {
	buf    string
	active bool
}

// observe feeds one outer token to the accumulator and returns the parsed
// tag once the token closes a start tag that has a body.
func (a *tagAccumulator) observe(lexeme, style, hint string, hasHint, eol bool) *Tag {
	isTag := modes.HasStyle(style, "tag")
	switch {
	case isTag && hasHint && !strings.ContainsAny(lexeme, "<>/") && !containsSpace(lexeme):
		a.buf = hint + " "
		a.active = true
	case a.active && isTag && strings.HasSuffix(lexeme, ">"):
		text := a.buf
		a.reset()
		if strings.HasSuffix(lexeme, "/>") {
			return nil
		}
		return parseTag(text)
	case a.active:
		a.buf += lexeme
		if eol {
			a.buf += " "
		}
	}
	return nil
}

func (a *tagAccumulator) reset() {
	a.buf = ""
	a.active = false
}

func containsSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return core.IsWhitespace(int(r)) }) >= 0
}

// parseTag splits accumulated tag text into a name and its quoted
// attributes. The text must be a non-space name followed by a single space;
// anything else yields nil.
func parseTag(text string) *Tag {
	sp := strings.IndexFunc(text, func(r rune) bool { return core.IsWhitespace(int(r)) })
	if sp <= 0 || text[sp] != ' ' {
		return nil
	}
	return &Tag{
		Name:       text[:sp],
		Attributes: scanAttributes(text[sp+1:]),
	}
}

// scanAttributes finds every `key="value"` or `key='value'` pair that is
// preceded by whitespace. Keys are the longest non-space run that still
// lets the pair match; later duplicates win.
func scanAttributes(text string) map[string]string {
	attrs := make(map[string]string)
	i := 0
	for i < len(text) {
		if !isASCIISpace(text[i]) {
			i++
			continue
		}
		keyStart := i
		for keyStart < len(text) && isASCIISpace(text[keyStart]) {
			keyStart++
		}
		runEnd := keyStart
		for runEnd < len(text) && !isASCIISpace(text[runEnd]) {
			runEnd++
		}
		i = runEnd
		for keyEnd := runEnd; keyEnd > keyStart; keyEnd-- {
			if value, next, ok := matchQuotedValue(text, keyEnd); ok {
				attrs[text[keyStart:keyEnd]] = value
				i = next
				break
			}
		}
	}
	return attrs
}

// matchQuotedValue matches `\s*=\s*("..."|'...')` at pos.
func matchQuotedValue(text string, pos int) (value string, next int, ok bool) {
	pos = skipASCIISpace(text, pos)
	if pos >= len(text) || text[pos] != '=' {
		return "", 0, false
	}
	pos = skipASCIISpace(text, pos+1)
	if pos >= len(text) || (text[pos] != '"' && text[pos] != '\'') {
		return "", 0, false
	}
	end := strings.IndexByte(text[pos+1:], text[pos])
	if end < 0 {
		return "", 0, false
	}
	return text[pos+1 : pos+1+end], pos + end + 2, true
}

func skipASCIISpace(text string, pos int) int {
	for pos < len(text) && isASCIISpace(text[pos]) {
		pos++
	}
	return pos
}

func isASCIISpace(b byte) bool {
	return core.IsWhitespace(int(b)) && b < 0x80
}
