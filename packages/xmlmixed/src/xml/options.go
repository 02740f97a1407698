package xml

// Options configures the XML mode. Pointer and map fields left nil take
// the default of the selected dialect (HTML when HTMLMode is set, strict
// XML otherwise).
type Options struct {
	HTMLMode                  bool                       `mapstructure:"htmlMode"`
	AutoSelfClosers           map[string]bool            `mapstructure:"autoSelfClosers"`
	ImplicitlyClosed          map[string]bool            `mapstructure:"implicitlyClosed"`
	ContextGrabbers           map[string]map[string]bool `mapstructure:"contextGrabbers"`
	DoNotIndent               map[string]bool            `mapstructure:"doNotIndent"`
	AllowUnquoted             *bool                      `mapstructure:"allowUnquoted"`
	AllowMissing              *bool                      `mapstructure:"allowMissing"`
	AllowMissingTagName       *bool                      `mapstructure:"allowMissingTagName"`
	CaseFold                  *bool                      `mapstructure:"caseFold"`
	MatchClosing              *bool                      `mapstructure:"matchClosing"`
	MultilineTagIndentFactor  *int                       `mapstructure:"multilineTagIndentFactor"`
	MultilineTagIndentPastTag *bool                      `mapstructure:"multilineTagIndentPastTag"`
	AlignCDATA                bool                       `mapstructure:"alignCDATA"`
}

// config is Options with every default applied
type config struct {
	htmlMode                  bool
	autoSelfClosers           map[string]bool
	implicitlyClosed          map[string]bool
	contextGrabbers           map[string]map[string]bool
	doNotIndent               map[string]bool
	allowUnquoted             bool
	allowMissing              bool
	allowMissingTagName       bool
	caseFold                  bool
	matchClosing              bool
	multilineTagIndentFactor  int
	multilineTagIndentPastTag bool
	alignCDATA                bool
}

// Defaults returns the fully populated options of a dialect
func Defaults(htmlMode bool) Options {
	c := newConfig(Options{HTMLMode: htmlMode})
	return Options{
		HTMLMode:                  c.htmlMode,
		AutoSelfClosers:           c.autoSelfClosers,
		ImplicitlyClosed:          c.implicitlyClosed,
		ContextGrabbers:           c.contextGrabbers,
		DoNotIndent:               c.doNotIndent,
		AllowUnquoted:             boolPtr(c.allowUnquoted),
		AllowMissing:              boolPtr(c.allowMissing),
		AllowMissingTagName:       boolPtr(c.allowMissingTagName),
		CaseFold:                  boolPtr(c.caseFold),
		MatchClosing:              boolPtr(c.matchClosing),
		MultilineTagIndentFactor:  intPtr(c.multilineTagIndentFactor),
		MultilineTagIndentPastTag: boolPtr(c.multilineTagIndentPastTag),
		AlignCDATA:                c.alignCDATA,
	}
}

func newConfig(opts Options) config {
	c := config{
		htmlMode:                  opts.HTMLMode,
		autoSelfClosers:           map[string]bool{},
		implicitlyClosed:          map[string]bool{},
		contextGrabbers:           map[string]map[string]bool{},
		doNotIndent:               map[string]bool{},
		matchClosing:              true,
		multilineTagIndentFactor:  1,
		multilineTagIndentPastTag: true,
		alignCDATA:                opts.AlignCDATA,
	}
	if opts.HTMLMode {
		c.autoSelfClosers = htmlAutoSelfClosers()
		c.implicitlyClosed = htmlImplicitlyClosed()
		c.contextGrabbers = htmlContextGrabbers()
		c.doNotIndent = htmlDoNotIndent()
		c.allowUnquoted = true
		c.allowMissing = true
		c.caseFold = true
	}

	if opts.AutoSelfClosers != nil {
		c.autoSelfClosers = opts.AutoSelfClosers
	}
	if opts.ImplicitlyClosed != nil {
		c.implicitlyClosed = opts.ImplicitlyClosed
	}
	if opts.ContextGrabbers != nil {
		c.contextGrabbers = opts.ContextGrabbers
	}
	if opts.DoNotIndent != nil {
		c.doNotIndent = opts.DoNotIndent
	}
	if opts.AllowUnquoted != nil {
		c.allowUnquoted = *opts.AllowUnquoted
	}
	if opts.AllowMissing != nil {
		c.allowMissing = *opts.AllowMissing
	}
	if opts.AllowMissingTagName != nil {
		c.allowMissingTagName = *opts.AllowMissingTagName
	}
	if opts.CaseFold != nil {
		c.caseFold = *opts.CaseFold
	}
	if opts.MatchClosing != nil {
		c.matchClosing = *opts.MatchClosing
	}
	if opts.MultilineTagIndentFactor != nil && *opts.MultilineTagIndentFactor > 0 {
		c.multilineTagIndentFactor = *opts.MultilineTagIndentFactor
	}
	if opts.MultilineTagIndentPastTag != nil {
		c.multilineTagIndentPastTag = *opts.MultilineTagIndentPastTag
	}
	return c
}

func (c *config) sameTagName(a, b string) bool {
	if c.caseFold {
		return lower(a) == lower(b)
	}
	return a == b
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
