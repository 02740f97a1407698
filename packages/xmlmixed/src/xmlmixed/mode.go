// Package xmlmixed tokenizes XML whose element bodies are written in other
// languages. A caller-supplied policy picks an embedded mode for each
// opening tag; the body up to the matching closing tag is then tokenized by
// that mode, with CDATA markers and the closing tag kept as token
// boundaries the embedded mode can never run across.
package xmlmixed

import (
	"github.com/rs/zerolog"

	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/xml"
)

// Name is the registry name of the mixed mode
const Name = "xmlmixed"

// Styles returned for CDATA markers inside embedded regions
const (
	StyleCdataOpen  = "cdata open"
	StyleCdataClose = "cdata close"
)

// Options configures a Mode
type Options struct {
	// DecideMode maps a parsed opening tag to a mode descriptor, or nil to
	// keep the tag body as XML. It is called once per completed start tag.
	DecideMode func(tag *Tag) any
	// XMLOptions configures the default outer mode.
	XMLOptions xml.Options
	// Outer replaces the outer XML mode. It should implement
	// modes.TagNamer, otherwise no tag is ever recognized.
	Outer      modes.Mode
	IndentUnit int
	// Registry resolves descriptors returned by DecideMode. Without one
	// only modes.Mode descriptors resolve.
	Registry *modes.Registry
	Logger   *zerolog.Logger
}

// DefaultDecideMode never embeds another mode
func DefaultDecideMode(*Tag) any {
	return nil
}

// Mode is the mixed XML tokenizer
type Mode struct {
	outer      modes.Mode
	decideMode func(*Tag) any
	registry   *modes.Registry
	logger     zerolog.Logger
}

var (
	_ modes.Mode       = (*Mode)(nil)
	_ modes.Indenter   = (*Mode)(nil)
	_ modes.InnerModer = (*Mode)(nil)
)

// New creates a Mode
func New(opts Options) *Mode {
	m := &Mode{
		outer:      opts.Outer,
		decideMode: opts.DecideMode,
		registry:   opts.Registry,
		logger:     zerolog.Nop(),
	}
	if m.outer == nil {
		m.outer = xml.New(opts.XMLOptions, opts.IndentUnit)
	}
	if m.decideMode == nil {
		m.decideMode = DefaultDecideMode
	}
	if opts.Logger != nil {
		m.logger = opts.Logger.With().Str("mode", Name).Logger()
	}
	return m
}

// Register defines the mixed mode on r under Name. Descriptors are
// resolved against r.
func Register(r *modes.Registry, opts Options) error {
	opts.Registry = r
	return r.Define(Name, func(*modes.Registry, map[string]any) (modes.Mode, error) {
		return New(opts), nil
	})
}

// Name implements modes.Mode
func (m *Mode) Name() string {
	return Name
}

// Outer returns the outer markup mode
func (m *Mode) Outer() modes.Mode {
	return m.outer
}

// StartState implements modes.Mode
func (m *Mode) StartState(baseIndent int) modes.State {
	return &State{
		stage:    StageOuter,
		xmlState: m.outer.StartState(baseIndent),
	}
}

// CopyState implements modes.Mode
func (m *Mode) CopyState(st modes.State) modes.State {
	return st.Copy()
}

// Token implements modes.Mode. An empty style with no progress means the
// stage changed and the caller should call Token again at the same
// position.
func (m *Mode) Token(s *stream.StringStream, state modes.State) string {
	st := state.(*State)
	switch st.stage {
	case StageInner:
		return m.inner(s, st)
	default:
		return m.outerToken(s, st)
	}
}

// InnerMode implements modes.InnerModer. Right after a CDATA marker the
// mixed mode itself owns the token; otherwise the embedded mode does while
// one is active, and the outer mode does everywhere else.
func (m *Mode) InnerMode(state modes.State) (modes.Mode, modes.State) {
	st := state.(*State)
	if st.tag != nil && st.cdataEaten {
		return m, st
	}
	if st.localMode != nil {
		return st.localMode, st.localState
	}
	return m.outer, st.xmlState
}

func (m *Mode) resolve(descriptor any) (modes.Mode, bool) {
	if m.registry == nil {
		mode, ok := descriptor.(modes.Mode)
		return mode, ok
	}
	return m.registry.Resolve(descriptor)
}
