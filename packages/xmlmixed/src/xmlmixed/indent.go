package xmlmixed

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/modes"
)

// Indent implements modes.Indenter. Lines starting with a closing tag, and
// every line outside an embedded region, are indented by the outer mode;
// inside a region the embedded mode decides, or the host default applies
// when it cannot indent.
func (m *Mode) Indent(state modes.State, textAfter, line string) (int, bool) {
	st := state.(*State)
	if st.localMode == nil || startsWithClosingTag(textAfter) {
		if indenter, ok := m.outer.(modes.Indenter); ok {
			return indenter.Indent(st.xmlState, textAfter, line)
		}
		return modes.Pass()
	}
	if indenter, ok := st.localMode.(modes.Indenter); ok {
		return indenter.Indent(st.localState, textAfter, line)
	}
	return modes.Pass()
}

func startsWithClosingTag(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t\r\n\f\v"), "</")
}
