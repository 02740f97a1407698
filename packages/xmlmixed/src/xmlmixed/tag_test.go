package xmlmixed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Tag
	}{
		{
			name: "should parse a bare name",
			text: "code ",
			want: &Tag{Name: "code", Attributes: map[string]string{}},
		},
		{
			name: "should parse quoted attributes of both kinds",
			text: `code  lang="g" kind='x' `,
			want: &Tag{Name: "code", Attributes: map[string]string{"lang": "g", "kind": "x"}},
		},
		{
			name: "should allow whitespace around the equals sign",
			text: `code  lang = "g" `,
			want: &Tag{Name: "code", Attributes: map[string]string{"lang": "g"}},
		},
		{
			name: "should keep the last duplicate",
			text: `code  a="1" a="2" `,
			want: &Tag{Name: "code", Attributes: map[string]string{"a": "2"}},
		},
		{
			name: "should skip unquoted values",
			text: `code  a=1 b="2" `,
			want: &Tag{Name: "code", Attributes: map[string]string{"b": "2"}},
		},
		{
			name: "should keep spaces inside values",
			text: `code  title="a b" `,
			want: &Tag{Name: "code", Attributes: map[string]string{"title": "a b"}},
		},
		{
			name: "should keep attribute names with namespaces",
			text: `code  xml:lang="en" `,
			want: &Tag{Name: "code", Attributes: map[string]string{"xml:lang": "en"}},
		},
		{
			name: "should reject text with a leading space",
			text: " code ",
		},
		{
			name: "should reject text without a separator",
			text: "code",
		},
		{
			name: "should reject a tab separator",
			text: "code\tlang=\"g\"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTag(tt.text)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Tag{}, "Mode")); diff != "" {
				t.Errorf("parseTag(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestTagAccumulator(t *testing.T) {
	type step struct {
		lexeme, style, hint string
		hasHint, eol        bool
	}

	feed := func(acc *tagAccumulator, steps []step) *Tag {
		var tag *Tag
		for _, s := range steps {
			if got := acc.observe(s.lexeme, s.style, s.hint, s.hasHint, s.eol); got != nil {
				tag = got
			}
		}
		return tag
	}

	t.Run("should collect a single-line start tag", func(t *testing.T) {
		var acc tagAccumulator
		tag := feed(&acc, []step{
			{lexeme: "<", style: "tag bracket"},
			{lexeme: "code", style: "tag", hint: "code", hasHint: true},
			{lexeme: " "},
			{lexeme: "lang", style: "attribute", hint: "code", hasHint: true},
			{lexeme: "=", hint: "code", hasHint: true},
			{lexeme: `"g"`, style: "string", hint: "code", hasHint: true},
			{lexeme: ">", style: "tag bracket"},
		})
		require.NotNil(t, tag)
		require.Equal(t, "code", tag.Name)
		require.Equal(t, map[string]string{"lang": "g"}, tag.Attributes)
		require.False(t, acc.active)
		require.Empty(t, acc.buf)
	})

	t.Run("should join lines with a space", func(t *testing.T) {
		var acc tagAccumulator
		tag := feed(&acc, []step{
			{lexeme: "code", style: "tag", hint: "code", hasHint: true, eol: true},
			{lexeme: "  "},
			{lexeme: "a", style: "attribute"},
			{lexeme: "="},
			{lexeme: `"1"`, style: "string", eol: true},
			{lexeme: "b", style: "attribute"},
			{lexeme: "="},
			{lexeme: `'2'`, style: "string"},
			{lexeme: ">", style: "tag bracket"},
		})
		require.NotNil(t, tag)
		require.Equal(t, map[string]string{"a": "1", "b": "2"}, tag.Attributes)
	})

	t.Run("should drop self-closing tags", func(t *testing.T) {
		var acc tagAccumulator
		tag := feed(&acc, []step{
			{lexeme: "br", style: "tag", hint: "br", hasHint: true},
			{lexeme: "/>", style: "tag bracket"},
		})
		require.Nil(t, tag)
		require.False(t, acc.active)
	})

	t.Run("should ignore tag tokens without a hint", func(t *testing.T) {
		var acc tagAccumulator
		tag := feed(&acc, []step{
			{lexeme: "</", style: "tag bracket"},
			{lexeme: "code", style: "tag"},
			{lexeme: ">", style: "tag bracket"},
		})
		require.Nil(t, tag)
		require.False(t, acc.active)
	})

	t.Run("should ignore text outside tags", func(t *testing.T) {
		var acc tagAccumulator
		tag := feed(&acc, []step{
			{lexeme: "hello"},
			{lexeme: "&amp;", style: "atom"},
		})
		require.Nil(t, tag)
		require.Empty(t, acc.buf)
	})
}

func TestClosingTagAt(t *testing.T) {
	tests := []struct {
		text string
		pos  int
		want bool
	}{
		{text: "</code>", want: true},
		{text: "</ code >", want: true},
		{text: "</CoDe>", want: true},
		{text: "</codex>", want: false},
		{text: "</cod>", want: false},
		{text: "</code", want: false},
		{text: "x</code>", pos: 1, want: true},
		{text: "< /code>", want: false},
	}
	for _, tt := range tests {
		t.Run("should match "+tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, closingTagAt(tt.text, tt.pos, "code"))
		})
	}

	t.Run("should find the first matching closing tag", func(t *testing.T) {
		require.Equal(t, 10, findClosingTag("a</codex> </code></code>", 0, "code"))
		require.Equal(t, -1, findClosingTag("a</code>", 2, "code"))
	})
}
