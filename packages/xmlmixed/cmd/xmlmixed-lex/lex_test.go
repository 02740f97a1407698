package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "xmlmixed.yaml", "modes:\n  - tag: src\n    mode: calc\n")
	doc := writeFile(t, dir, "a.xml", "<src>1+1</src>")

	t.Run("should print tokens as text", func(t *testing.T) {
		var out bytes.Buffer
		err := run(context.Background(), &out, cliOptions{configPath: cfgPath}, []string{doc})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 9)
		require.Equal(t, doc+":1:0-1\ttag bracket\t\"<\"", lines[0])
		require.Equal(t, doc+":1:5-6\tnumber\t\"1\"", lines[3])
		require.Equal(t, doc+":1:6-7\toperator\t\"+\"", lines[4])
	})

	t.Run("should print tokens as json", func(t *testing.T) {
		var out bytes.Buffer
		err := run(context.Background(), &out, cliOptions{configPath: cfgPath, json: true}, []string{doc})
		require.NoError(t, err)

		dec := json.NewDecoder(&out)
		var records []tokenRecord
		for dec.More() {
			var rec tokenRecord
			require.NoError(t, dec.Decode(&rec))
			records = append(records, rec)
		}
		require.Len(t, records, 9)
		require.Equal(t, tokenRecord{File: doc, Line: 0, Start: 6, End: 7, Style: "operator", Text: "+"}, records[4])
	})

	t.Run("should keep file order", func(t *testing.T) {
		other := writeFile(t, dir, "b.xml", "x")
		var out bytes.Buffer
		err := run(context.Background(), &out, cliOptions{}, []string{other, doc})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out.String(), other+":1:0-1\t-\t\"x\"\n"))
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		var out bytes.Buffer
		err := run(context.Background(), &out, cliOptions{}, []string{filepath.Join(dir, "missing.xml")})
		require.Error(t, err)
		require.Empty(t, out.String())
	})

	t.Run("should fail on a bad config", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.yaml", "modes:\n  - tag: src\n")
		err := run(context.Background(), &bytes.Buffer{}, cliOptions{configPath: bad}, []string{doc})
		require.Error(t, err)
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("should require a file", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs(nil)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.Error(t, cmd.Execute())
	})

	t.Run("should tokenize in html mode", func(t *testing.T) {
		doc := writeFile(t, t.TempDir(), "p.html", "<br>")
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--html", doc})
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		require.NoError(t, cmd.Execute())
		require.Contains(t, out.String(), "\ttag\t\"br\"")
	})
}
