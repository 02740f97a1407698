package modes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/util"
)

type fakeState struct{ n int }

func (s *fakeState) Copy() modes.State {
	c := *s
	return &c
}

type fakeMode struct {
	name    string
	options map[string]any
}

func (m *fakeMode) Name() string                         { return m.name }
func (m *fakeMode) StartState(int) modes.State           { return &fakeState{} }
func (m *fakeMode) CopyState(st modes.State) modes.State { return st.Copy() }
func (m *fakeMode) Token(s *stream.StringStream, _ modes.State) string {
	s.SkipToEnd()
	return m.name
}

func fakeFactory(name string) modes.Factory {
	return func(_ *modes.Registry, options map[string]any) (modes.Mode, error) {
		return &fakeMode{name: name, options: options}, nil
	}
}

func TestRegistry(t *testing.T) {
	t.Run("should define and resolve modes by name", func(t *testing.T) {
		r := modes.NewRegistry()
		require.NoError(t, r.Define("calc", fakeFactory("calc")))
		require.NoError(t, r.Define(" text ", fakeFactory("text")))
		require.Equal(t, []string{"calc", "text"}, r.Names())

		mode, ok := r.Resolve("text")
		require.True(t, ok)
		require.Equal(t, "text", mode.Name())

		_, ok = r.Resolve("missing")
		require.False(t, ok)
		_, ok = r.Resolve(nil)
		require.False(t, ok)
		_, ok = r.Resolve(42)
		require.False(t, ok)
	})

	t.Run("should reject bad definitions", func(t *testing.T) {
		r := modes.NewRegistry()
		require.ErrorIs(t, r.Define("  ", fakeFactory("x")), modes.ErrEmptyName)
		require.ErrorIs(t, r.Define("x", nil), modes.ErrNilFactory)
		require.NoError(t, r.Define("x", fakeFactory("x")))
		err := r.Define("x", fakeFactory("x"))
		require.ErrorIs(t, err, modes.ErrModeExists)
		require.Contains(t, err.Error(), `"x"`)
	})

	t.Run("should pass descriptor options to the factory", func(t *testing.T) {
		r := modes.NewRegistry()
		require.NoError(t, r.Define("calc", fakeFactory("calc")))

		mode, ok := r.Resolve(modes.Spec{Name: "calc", Options: map[string]any{"indentUnit": 4}})
		require.True(t, ok)
		require.Equal(t, map[string]any{"indentUnit": 4}, mode.(*fakeMode).options)

		mode, ok = r.Resolve(&modes.Spec{Name: "calc"})
		require.True(t, ok)
		require.Nil(t, mode.(*fakeMode).options)

		var nilSpec *modes.Spec
		_, ok = r.Resolve(nilSpec)
		require.False(t, ok)
	})

	t.Run("should resolve mime aliases", func(t *testing.T) {
		r := modes.NewRegistry()
		require.NoError(t, r.Define("calc", fakeFactory("calc")))
		require.NoError(t, r.DefineMIME("text/x-calc", modes.Spec{Name: "calc", Options: map[string]any{"a": 1}}))
		require.ErrorIs(t, r.DefineMIME("", modes.Spec{}), modes.ErrEmptyName)

		mode, ok := r.Resolve("text/x-calc")
		require.True(t, ok)
		require.Equal(t, map[string]any{"a": 1}, mode.(*fakeMode).options)

		mode, ok = r.Resolve(modes.Spec{Name: "text/x-calc", Options: map[string]any{"b": 2}})
		require.True(t, ok)
		require.Equal(t, map[string]any{"b": 2}, mode.(*fakeMode).options)
	})

	t.Run("should return mode values unchanged", func(t *testing.T) {
		r := modes.NewRegistry()
		m := &fakeMode{name: "inline"}
		got, ok := r.Resolve(m)
		require.True(t, ok)
		require.Same(t, m, got)
	})

	t.Run("should treat factory errors as unresolved", func(t *testing.T) {
		r := modes.NewRegistry()
		require.NoError(t, r.Define("broken", func(*modes.Registry, map[string]any) (modes.Mode, error) {
			return nil, errors.New("bad options")
		}))
		_, ok := r.Resolve("broken")
		require.False(t, ok)
	})

	t.Run("should filter fold helpers by predicate", func(t *testing.T) {
		r := modes.NewRegistry()
		fold := func(modes.Document, util.Position) (util.Range, bool) { return util.Range{}, false }
		r.RegisterFoldHelper(modes.FoldHelper{Name: "all", Fold: fold})
		r.RegisterFoldHelper(modes.FoldHelper{
			Name:      "calc-only",
			Predicate: func(m modes.Mode) bool { return m.Name() == "calc" },
			Fold:      fold,
		})

		var names []string
		for _, h := range r.FoldHelpers(&fakeMode{name: "text"}) {
			names = append(names, h.Name)
		}
		require.Equal(t, []string{"all"}, names)
		require.Len(t, r.FoldHelpers(&fakeMode{name: "calc"}), 2)
	})
}

type wrapper struct {
	fakeMode
	inner modes.Mode
}

func (w *wrapper) InnerMode(st modes.State) (modes.Mode, modes.State) {
	if st.(*fakeState).n > 0 {
		return w.inner, st
	}
	return w, st
}

func TestResolveInner(t *testing.T) {
	t.Run("should follow inner modes", func(t *testing.T) {
		inner := &fakeMode{name: "inner"}
		w := &wrapper{fakeMode: fakeMode{name: "outer"}, inner: inner}

		mode, _ := modes.ResolveInner(w, &fakeState{n: 1})
		require.Equal(t, "inner", mode.Name())

		mode, _ = modes.ResolveInner(w, &fakeState{})
		require.Equal(t, "outer", mode.Name())
	})
}

func TestHasStyle(t *testing.T) {
	require.True(t, modes.HasStyle("tag bracket", "tag"))
	require.True(t, modes.HasStyle("tag", "tag"))
	require.False(t, modes.HasStyle("tagged", "tag"))
	require.False(t, modes.HasStyle("", "tag"))

	col, ok := modes.Pass()
	require.False(t, ok)
	require.Zero(t, col)
}
