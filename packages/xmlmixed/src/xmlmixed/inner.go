package xmlmixed

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// inner reads one token of an embedded region. CDATA markers are tokens of
// their own; the closing tag hands control back to the outer stage without
// consuming anything. Embedded tokens that run past a marker or the closing
// tag are cut back to it.
func (m *Mode) inner(s *stream.StringStream, st *State) string {
	st.cdataEaten = false
	if st.cdata && s.Match(cdataClose, true, false) {
		st.cdata = false
		st.cdataEaten = true
		return StyleCdataClose
	}
	if !st.cdata {
		if s.Match(cdataOpen, true, false) {
			st.cdata = true
			st.cdataEaten = true
			return StyleCdataOpen
		}
		if closingTagAt(s.String, s.Pos, st.tag.Name) {
			m.exit(st)
			return ""
		}
	}

	start := s.Pos
	openIdx, closeIdx, exitIdx := -1, -1, -1
	if st.cdata {
		closeIdx = indexFrom(s.String, cdataClose, start)
	} else {
		openIdx = indexFrom(s.String, cdataOpen, start)
		exitIdx = findClosingTag(s.String, start, st.tag.Name)
	}

	style := st.localMode.Token(s, st.localState)

	backedUp := false
	for _, boundary := range [...]int{openIdx, closeIdx, exitIdx} {
		if boundary >= 0 && s.Pos > boundary {
			s.BackUp(s.Pos - boundary)
			backedUp = true
		}
	}
	if backedUp && s.Pos == start {
		return ""
	}
	return style
}

func (m *Mode) exit(st *State) {
	m.logger.Debug().Str("tag", st.tag.Name).Msg("leaving embedded region")
	st.tag = nil
	st.localMode = nil
	st.localState = nil
	st.cdata = false
	st.stage = StageOuter
}

func indexFrom(text, substr string, from int) int {
	if from > len(text) {
		return -1
	}
	idx := strings.Index(text[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// findClosingTag returns the offset of the first `</name>` at or after
// from. Whitespace is allowed around the name, which matches ignoring
// ASCII case.
func findClosingTag(text string, from int, name string) int {
	for pos := from; ; pos++ {
		pos = indexFrom(text, "</", pos)
		if pos < 0 {
			return -1
		}
		if closingTagAt(text, pos, name) {
			return pos
		}
	}
}

func closingTagAt(text string, pos int, name string) bool {
	if !strings.HasPrefix(text[pos:], "</") {
		return false
	}
	pos = skipSpace(text, pos+2)
	if len(text)-pos < len(name) || !core.EqualFoldASCII(text[pos:pos+len(name)], name) {
		return false
	}
	pos = skipSpace(text, pos+len(name))
	return pos < len(text) && text[pos] == '>'
}

func skipSpace(text string, pos int) int {
	for pos < len(text) && isASCIISpace(text[pos]) {
		pos++
	}
	return pos
}
