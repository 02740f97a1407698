package modes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"xmlmixed-go/packages/xmlmixed/src/util"
)

var (
	ErrEmptyName  = errors.New("mode name is empty")
	ErrModeExists = errors.New("mode already defined")
	ErrNilFactory = errors.New("mode factory is nil")
)

// Factory builds a mode from the options of a Spec. The registry is passed
// so composite modes can resolve the modes they embed.
type Factory func(r *Registry, options map[string]any) (Mode, error)

// Document is the read-only view of an editor buffer that fold helpers
// work against.
type Document interface {
	Line(n int) string
	LastLine() int
	TokenTypeAt(pos util.Position) string
}

// FoldFunc computes the range to fold for a start position.
type FoldFunc func(doc Document, start util.Position) (util.Range, bool)

// FoldHelper is a named FoldFunc guarded by a predicate on the document's
// mode.
type FoldHelper struct {
	Name      string
	Predicate func(mode Mode) bool
	Fold      FoldFunc
}

// Registry maps mode names and MIME types to mode factories. It is built
// once and passed to the modes that need to resolve descriptors.
type Registry struct {
	mu          sync.RWMutex
	factories   map[string]Factory
	mimes       map[string]Spec
	foldHelpers []FoldHelper
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mimes:     make(map[string]Spec),
	}
}

// Define registers a factory under name
func (r *Registry) Define(name string, factory Factory) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return fmt.Errorf("define %q: %w", name, ErrNilFactory)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("define %q: %w", name, ErrModeExists)
	}
	r.factories[name] = factory
	return nil
}

// DefineMIME registers a MIME type as an alias for spec
func (r *Registry) DefineMIME(mime string, spec Spec) error {
	mime = strings.TrimSpace(mime)
	if mime == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mimes[mime] = spec
	return nil
}

// Names lists the defined mode names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a descriptor into a mode. A descriptor is a Mode, a Spec,
// a *Spec, or a string naming a mode or MIME type. Anything else, and any
// name that is not defined, resolves to nothing.
func (r *Registry) Resolve(descriptor any) (Mode, bool) {
	var spec Spec
	switch d := descriptor.(type) {
	case nil:
		return nil, false
	case Mode:
		return d, true
	case Spec:
		spec = d
	case *Spec:
		if d == nil {
			return nil, false
		}
		spec = *d
	case string:
		spec = Spec{Name: d}
	default:
		return nil, false
	}

	r.mu.RLock()
	if alias, ok := r.mimes[spec.Name]; ok {
		if spec.Options == nil {
			spec.Options = alias.Options
		}
		spec.Name = alias.Name
	}
	factory, ok := r.factories[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	mode, err := factory(r, spec.Options)
	if err != nil || mode == nil {
		return nil, false
	}
	return mode, true
}

// RegisterFoldHelper adds a fold helper. Helpers are consulted in
// registration order.
func (r *Registry) RegisterFoldHelper(helper FoldHelper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.foldHelpers = append(r.foldHelpers, helper)
}

// FoldHelpers returns the helpers whose predicate accepts mode
func (r *Registry) FoldHelpers(mode Mode) []FoldHelper {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var helpers []FoldHelper
	for _, h := range r.foldHelpers {
		if h.Predicate == nil || h.Predicate(mode) {
			helpers = append(helpers, h)
		}
	}
	return helpers
}
