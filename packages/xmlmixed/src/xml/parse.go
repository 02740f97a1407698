package xml

func (m *Mode) parse(c *call, state parserState, typ string) parserState {
	switch state {
	case tagNameState:
		return m.tagName(c, typ)
	case closeTagNameState:
		return m.closeTagName(c, typ)
	case closeState:
		return m.close(c, typ)
	case closeStateErr:
		c.setStyle = "error"
		return m.close(c, typ)
	case attrState:
		return m.attr(c, typ)
	case attrEqState:
		if typ == "equals" {
			return attrValueState
		}
		if !m.cfg.allowMissing {
			c.setStyle = "error"
		}
		return m.attr(c, typ)
	case attrValueState:
		if typ == "string" {
			return attrContinuedState
		}
		if typ == "word" && m.cfg.allowUnquoted {
			c.setStyle = "string"
			return attrState
		}
		c.setStyle = "error"
		return m.attr(c, typ)
	case attrContinuedState:
		if typ == "string" {
			return attrContinuedState
		}
		return m.attr(c, typ)
	default:
		return m.base(c, typ)
	}
}

func (m *Mode) base(c *call, typ string) parserState {
	switch typ {
	case "openTag":
		c.st.tagStart = c.s.Column()
		return tagNameState
	case "closeTag":
		return closeTagNameState
	}
	return baseState
}

func (m *Mode) tagName(c *call, typ string) parserState {
	if typ == "word" {
		c.st.tagName = c.s.Current()
		c.setStyle = "tag"
		return attrState
	}
	if m.cfg.allowMissingTagName && typ == "endTag" {
		c.setStyle = "tag bracket"
		return m.attr(c, typ)
	}
	c.setStyle = "error"
	return tagNameState
}

func (m *Mode) closeTagName(c *call, typ string) parserState {
	st := c.st
	if typ == "word" {
		name := c.s.Current()
		if st.context != nil && !m.cfg.sameTagName(st.context.tagName, name) &&
			m.cfg.implicitlyClosed[lower(st.context.tagName)] {
			st.popContext()
		}
		if (st.context != nil && m.cfg.sameTagName(st.context.tagName, name)) || !m.cfg.matchClosing {
			c.setStyle = "tag"
			return closeState
		}
		c.setStyle = "tag error"
		return closeStateErr
	}
	if m.cfg.allowMissingTagName && typ == "endTag" {
		c.setStyle = "tag bracket"
		return m.close(c, typ)
	}
	c.setStyle = "error"
	return closeStateErr
}

func (m *Mode) close(c *call, typ string) parserState {
	if typ != "endTag" {
		c.setStyle = "error"
		return closeState
	}
	c.st.popContext()
	return baseState
}

func (m *Mode) attr(c *call, typ string) parserState {
	st := c.st
	switch typ {
	case "word":
		c.setStyle = "attribute"
		return attrEqState
	case "endTag", "selfcloseTag":
		name, start := st.tagName, st.tagStart
		st.resetTag()
		m.maybePopContext(st, name)
		if typ != "selfcloseTag" && !m.cfg.autoSelfClosers[lower(name)] {
			st.context = &tagContext{
				prev:        st.context,
				tagName:     name,
				indent:      st.indented,
				startOfLine: start == st.indented,
				noIndent:    m.cfg.doNotIndent[name] || (st.context != nil && st.context.noIndent),
			}
		}
		return baseState
	}
	c.setStyle = "error"
	return attrState
}

// maybePopContext closes open elements that the next tag implicitly ends,
// such as an open <li> when another <li> starts.
func (m *Mode) maybePopContext(st *State, nextTagName string) {
	for st.context != nil {
		grabbers, ok := m.cfg.contextGrabbers[lower(st.context.tagName)]
		if !ok || !grabbers[lower(nextTagName)] {
			return
		}
		st.popContext()
	}
}
