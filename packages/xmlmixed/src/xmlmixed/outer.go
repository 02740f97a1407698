package xmlmixed

import (
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// outerToken reads one token with the outer mode and, when that token
// completes a start tag whose body should be embedded, switches st to the
// inner stage. The switch applies from the next token on.
func (m *Mode) outerToken(s *stream.StringStream, st *State) string {
	style := m.outer.Token(s, st.xmlState)

	var hint string
	var hasHint bool
	if namer, ok := m.outer.(modes.TagNamer); ok {
		hint, hasHint = namer.CurrentTagName(st.xmlState)
	}
	if tag := st.acc.observe(s.Current(), style, hint, hasHint, s.EOL()); tag != nil {
		m.enter(st, tag)
	}
	return style
}

func (m *Mode) enter(st *State, tag *Tag) {
	descriptor := m.decideMode(tag)
	if descriptor == nil {
		return
	}
	local, ok := m.resolve(descriptor)
	if !ok {
		m.logger.Debug().
			Str("tag", tag.Name).
			Interface("descriptor", descriptor).
			Msg("embedded mode not resolved")
		return
	}

	indent := 0
	if indenter, ok := m.outer.(modes.Indenter); ok {
		if n, ok := indenter.Indent(st.xmlState, "", ""); ok {
			indent = n
		}
	}

	tag.Mode = local
	st.tag = tag
	st.localMode = local
	st.localState = local.StartState(indent)
	st.stage = StageInner
	m.logger.Debug().
		Str("tag", tag.Name).
		Str("embedded", local.Name()).
		Int("indent", indent).
		Msg("entering embedded region")
}
