package xml

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
)

// Indent implements modes.Indenter
func (m *Mode) Indent(state modes.State, textAfter, line string) (int, bool) {
	st := state.(*State)
	ctx := st.context

	// Multi-line attribute strings line up with the opening quote when the
	// tag starts its line.
	if st.tokenize.kind == tokAttribute {
		if st.tagStart == st.indented {
			return st.stringStartCol + 1, true
		}
		return st.indented + m.indentUnit, true
	}
	if ctx != nil && ctx.noIndent {
		return modes.Pass()
	}
	if st.tokenize.kind != tokTag && st.tokenize.kind != tokText {
		return len(line) - len(strings.TrimLeft(line, " \t")), true
	}
	if st.tagName != "" {
		if m.cfg.multilineTagIndentPastTag {
			return st.tagStart + len(st.tagName) + 2, true
		}
		return st.tagStart + m.indentUnit*m.cfg.multilineTagIndentFactor, true
	}
	if m.cfg.alignCDATA && strings.Contains(textAfter, "<![CDATA[") {
		return 0, true
	}

	if closing, name, ok := leadingTag(textAfter); ok && closing {
		for ctx != nil {
			if ctx.tagName == name {
				ctx = ctx.prev
				break
			} else if m.cfg.implicitlyClosed[lower(ctx.tagName)] {
				ctx = ctx.prev
			} else {
				break
			}
		}
	} else if ok {
		for ctx != nil {
			grabbers := m.cfg.contextGrabbers[lower(ctx.tagName)]
			if !grabbers[lower(name)] {
				break
			}
			ctx = ctx.prev
		}
	}
	for ctx != nil && ctx.prev != nil && !ctx.startOfLine {
		ctx = ctx.prev
	}
	if ctx != nil {
		return ctx.indent + m.indentUnit, true
	}
	return st.baseIndent, true
}

// leadingTag recognizes a tag at the very start of text and returns
// whether it is a closing tag and its (possibly empty) name.
func leadingTag(text string) (closing bool, name string, ok bool) {
	if !strings.HasPrefix(text, "<") {
		return false, "", false
	}
	rest := text[1:]
	if strings.HasPrefix(rest, "/") {
		closing = true
		rest = rest[1:]
	}
	end := 0
	for end < len(rest) {
		code := int(rest[end])
		if !core.IsWordChar(code) && code != core.CharCOLON && code != core.CharPERIOD && code != core.CharMINUS {
			break
		}
		end++
	}
	return closing, rest[:end], true
}

// CurrentTagName implements modes.TagNamer
func (m *Mode) CurrentTagName(state modes.State) (string, bool) {
	st := state.(*State)
	return st.tagName, st.tagName != ""
}

// CurrentContext lists the open elements, outermost first
func (m *Mode) CurrentContext(state modes.State) []string {
	var names []string
	for ctx := state.(*State).context; ctx != nil; ctx = ctx.prev {
		names = append(names, ctx.tagName)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// SkipAttribute abandons a pending attribute value, e.g. after an editor
// auto-inserts a closing quote.
func (m *Mode) SkipAttribute(state modes.State) {
	st := state.(*State)
	if st.state == attrValueState {
		st.state = attrState
	}
}

// CommentDelimiters returns the block comment markers of the dialect
func (m *Mode) CommentDelimiters() (start, end string) {
	return "<!--", "-->"
}
