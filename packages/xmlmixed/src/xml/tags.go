package xml

import "strings"

// tagDefinition describes how an HTML element affects tokenizer context
type tagDefinition struct {
	closedByChildren []string
	closedByParent   bool
	isVoid           bool
	doNotIndent      bool
}

var htmlTagDefinitions = map[string]tagDefinition{
	// Void elements
	"area":     {isVoid: true},
	"base":     {isVoid: true},
	"br":       {isVoid: true},
	"col":      {isVoid: true},
	"command":  {isVoid: true},
	"embed":    {isVoid: true},
	"frame":    {isVoid: true},
	"hr":       {isVoid: true},
	"img":      {isVoid: true},
	"input":    {isVoid: true},
	"keygen":   {isVoid: true},
	"link":     {isVoid: true},
	"meta":     {isVoid: true},
	"param":    {isVoid: true},
	"source":   {isVoid: true},
	"track":    {isVoid: true},
	"wbr":      {isVoid: true},
	"menuitem": {isVoid: true},

	// Paragraph tag
	"p": {
		closedByChildren: []string{
			"address", "article", "aside", "blockquote", "dir", "div", "dl", "fieldset",
			"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
			"hgroup", "hr", "menu", "nav", "ol", "p", "pre", "section", "table", "ul",
		},
		closedByParent: true,
	},

	// Table tags
	"thead": {closedByChildren: []string{"tbody", "tfoot"}},
	"tbody": {closedByChildren: []string{"tbody", "tfoot"}, closedByParent: true},
	"tfoot": {closedByChildren: []string{"tbody"}, closedByParent: true},
	"tr":    {closedByChildren: []string{"tr"}, closedByParent: true},
	"td":    {closedByChildren: []string{"td", "th"}, closedByParent: true},
	"th":    {closedByChildren: []string{"td", "th"}, closedByParent: true},

	// List tags
	"li": {closedByChildren: []string{"li"}, closedByParent: true},
	"dt": {closedByChildren: []string{"dd", "dt"}},
	"dd": {closedByChildren: []string{"dd", "dt"}, closedByParent: true},

	// Ruby tags
	"rp": {closedByChildren: []string{"rp", "rt"}, closedByParent: true},
	"rt": {closedByChildren: []string{"rp", "rt"}, closedByParent: true},

	// Select tags
	"optgroup": {closedByChildren: []string{"optgroup"}, closedByParent: true},
	"option":   {closedByChildren: []string{"option", "optgroup"}, closedByParent: true},

	"pre": {doNotIndent: true},
}

func htmlAutoSelfClosers() map[string]bool {
	m := make(map[string]bool)
	for name, def := range htmlTagDefinitions {
		if def.isVoid {
			m[name] = true
		}
	}
	return m
}

func htmlImplicitlyClosed() map[string]bool {
	m := make(map[string]bool)
	for name, def := range htmlTagDefinitions {
		if def.closedByParent {
			m[name] = true
		}
	}
	return m
}

func htmlContextGrabbers() map[string]map[string]bool {
	m := make(map[string]map[string]bool)
	for name, def := range htmlTagDefinitions {
		if len(def.closedByChildren) == 0 {
			continue
		}
		children := make(map[string]bool, len(def.closedByChildren))
		for _, child := range def.closedByChildren {
			children[child] = true
		}
		m[name] = children
	}
	return m
}

func htmlDoNotIndent() map[string]bool {
	m := make(map[string]bool)
	for name, def := range htmlTagDefinitions {
		if def.doNotIndent {
			m[name] = true
		}
	}
	return m
}

func lower(tagName string) string {
	return strings.ToLower(tagName)
}
