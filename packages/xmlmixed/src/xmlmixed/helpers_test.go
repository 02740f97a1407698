package xmlmixed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xmlmixed-go/packages/xmlmixed/src/editor"
	"xmlmixed-go/packages/xmlmixed/src/langs"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/xmlmixed"
)

func newRegistry(t *testing.T) *modes.Registry {
	t.Helper()
	r := modes.NewRegistry()
	require.NoError(t, langs.RegisterAll(r))
	xmlmixed.RegisterCdataFold(r)
	return r
}

// byTagName embeds the mode named by the map entry for the tag's name
func byTagName(names map[string]any) func(*xmlmixed.Tag) any {
	return func(tag *xmlmixed.Tag) any {
		return names[tag.Name]
	}
}

func newMode(t *testing.T, decide func(*xmlmixed.Tag) any) (*xmlmixed.Mode, *modes.Registry) {
	t.Helper()
	r := newRegistry(t)
	return xmlmixed.New(xmlmixed.Options{DecideMode: decide, Registry: r}), r
}

func newDocument(t *testing.T, text string, decide func(*xmlmixed.Tag) any) *editor.Document {
	t.Helper()
	mode, r := newMode(t, decide)
	return editor.New(mode, text, editor.Options{Registry: r})
}

// tokenizeAndHumanize returns [text, style] pairs for every token
func tokenizeAndHumanize(t *testing.T, text string, decide func(*xmlmixed.Tag) any) [][]string {
	t.Helper()
	var out [][]string
	for _, line := range newDocument(t, text, decide).Tokens() {
		for _, tok := range line {
			out = append(out, []string{tok.Text, tok.Style})
		}
	}
	return out
}

// runLine drives mode over one line from st the way a host does,
// retrying calls that return without progress.
func runLine(mode modes.Mode, st modes.State, line string) [][]string {
	var out [][]string
	s := stream.New(line, 0, 0)
	for !s.EOL() {
		s.Start = s.Pos
		style := mode.Token(s, st)
		for i := 0; s.Pos == s.Start && i < 10; i++ {
			style = mode.Token(s, st)
		}
		out = append(out, []string{s.Current(), style})
	}
	return out
}
