package editor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"xmlmixed-go/packages/xmlmixed/src/editor"
	"xmlmixed-go/packages/xmlmixed/src/langs"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/util"
)

// stallMode never advances on 'x'
type stallMode struct{}

type stallState struct{}

func (stallState) Copy() modes.State { return stallState{} }

func (stallMode) Name() string                         { return "stall" }
func (stallMode) StartState(int) modes.State           { return stallState{} }
func (stallMode) CopyState(st modes.State) modes.State { return st.Copy() }
func (stallMode) Token(s *stream.StringStream, _ modes.State) string {
	if s.Peek() == 'x' {
		return "stuck"
	}
	s.Next()
	return "ok"
}

func TestSplitLines(t *testing.T) {
	expected := []string{"a", "b", "c", "", "d"}
	if diff := cmp.Diff(expected, editor.SplitLines("a\r\nb\rc\n\nd")); diff != "" {
		t.Errorf("SplitLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument(t *testing.T) {
	t.Run("should force progress when a mode stalls", func(t *testing.T) {
		doc := editor.New(stallMode{}, "axb", editor.Options{})
		var got [][]string
		for _, tok := range doc.LineTokens(0) {
			got = append(got, []string{tok.Text, tok.Style})
		}
		expected := [][]string{{"a", "ok"}, {"x", ""}, {"b", "ok"}}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("LineTokens() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should answer out of range lines with empty text", func(t *testing.T) {
		doc := editor.New(langs.NewText(), "one\ntwo", editor.Options{})
		require.Equal(t, "", doc.Line(5))
		require.Equal(t, "", doc.Line(-1))
		require.Equal(t, 1, doc.LastLine())
		require.Equal(t, 2, doc.LineCount())
		require.Equal(t, "one\ntwo", doc.Text())
	})

	t.Run("should retokenize after edits", func(t *testing.T) {
		calc := langs.NewCalc(2)
		doc := editor.New(calc, "(\nx\ny", editor.Options{})
		require.Equal(t, 2, doc.IndentationFor(2))

		doc.SetLine(0, "1")
		require.Equal(t, 0, doc.IndentationFor(2))

		doc.InsertLines(1, "((")
		require.Equal(t, []string{"1", "((", "x", "y"}, editor.SplitLines(doc.Text()))
		require.Equal(t, 4, doc.IndentationFor(3))

		doc.DeleteLines(1, 2)
		require.Equal(t, "1\nx\ny", doc.Text())
		require.Equal(t, 0, doc.IndentationFor(2))

		doc.DeleteLines(0, 10)
		require.Equal(t, 1, doc.LineCount())
	})

	t.Run("should find the token at a position", func(t *testing.T) {
		doc := editor.New(langs.NewCalc(2), "ab + 12", editor.Options{})
		require.Equal(t, "variable", doc.TokenTypeAt(util.Pos(0, 0)))
		require.Equal(t, "variable", doc.TokenTypeAt(util.Pos(0, 2)))
		require.Equal(t, "", doc.TokenTypeAt(util.Pos(0, 3)))
		require.Equal(t, "operator", doc.TokenTypeAt(util.Pos(0, 4)))
		require.Equal(t, "number", doc.TokenTypeAt(util.Pos(0, 7)))
		require.Equal(t, "", doc.TokenTypeAt(util.Pos(1, 0)))
	})

	t.Run("should fall back to the previous indentation when the mode defers", func(t *testing.T) {
		doc := editor.New(langs.NewText(), "    a\nb", editor.Options{})
		require.Equal(t, 4, doc.IndentationFor(1))
		require.Equal(t, 0, doc.IndentationFor(0))
	})

	t.Run("should return state copies", func(t *testing.T) {
		calc := langs.NewCalc(2)
		doc := editor.New(calc, "(\n", editor.Options{})
		st := doc.StateBefore(1)
		s := stream.New(")", 0, 0)
		calc.Token(s, st)
		require.Equal(t, 2, doc.IndentationFor(1))
	})

	t.Run("should fold only with a registry", func(t *testing.T) {
		doc := editor.New(langs.NewText(), "x", editor.Options{})
		_, ok := doc.FoldAt(util.Pos(0, 0))
		require.False(t, ok)

		r := modes.NewRegistry()
		r.RegisterFoldHelper(modes.FoldHelper{
			Name: "line",
			Fold: func(d modes.Document, start util.Position) (util.Range, bool) {
				return util.Range{From: start, To: util.Pos(d.LastLine(), 0)}, true
			},
		})
		doc = editor.New(langs.NewText(), "x\ny", editor.Options{Registry: r})
		got, ok := doc.FoldAt(util.Pos(0, 1))
		require.True(t, ok)
		require.Equal(t, util.Range{From: util.Pos(0, 1), To: util.Pos(1, 0)}, got)
	})
}
