package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"xmlmixed-go/packages/xmlmixed/src/config"
	"xmlmixed-go/packages/xmlmixed/src/editor"
	"xmlmixed-go/packages/xmlmixed/src/langs"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/xmlmixed"
)

type tokenRecord struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style,omitempty"`
	Text  string `json:"text"`
}

func run(ctx context.Context, out io.Writer, opts cliOptions, files []string) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.html {
		cfg.XML.HTMLMode = true
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	mode, ok := registry.Resolve(xmlmixed.Name)
	if !ok {
		return fmt.Errorf("mode %q is not registered", xmlmixed.Name)
	}

	results := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			doc := editor.New(mode, string(src), editor.Options{
				TabSize:    cfg.TabSize,
				IndentUnit: cfg.IndentUnit,
				Registry:   registry,
			})
			var buf bytes.Buffer
			if err := writeTokens(&buf, file, doc, opts.json); err != nil {
				return fmt.Errorf("format %s: %w", file, err)
			}
			results[i] = buf.Bytes()
			log.Debug().Str("file", file).Int("lines", doc.LineCount()).Msg("tokenized")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, res := range results {
		if _, err := out.Write(res); err != nil {
			return err
		}
	}
	return nil
}

func newRegistry(cfg config.Config) (*modes.Registry, error) {
	registry := modes.NewRegistry()
	if err := langs.RegisterAll(registry); err != nil {
		return nil, err
	}
	logger := log.Logger
	if err := xmlmixed.Register(registry, cfg.MixedOptions(registry, &logger)); err != nil {
		return nil, err
	}
	xmlmixed.RegisterCdataFold(registry)
	return registry, nil
}

func writeTokens(w io.Writer, file string, doc *editor.Document, asJSON bool) error {
	enc := json.NewEncoder(w)
	for _, line := range doc.Tokens() {
		for _, tok := range line {
			if asJSON {
				err := enc.Encode(tokenRecord{
					File:  file,
					Line:  tok.Line,
					Start: tok.Start,
					End:   tok.End,
					Style: tok.Style,
					Text:  tok.Text,
				})
				if err != nil {
					return err
				}
				continue
			}
			style := tok.Style
			if style == "" {
				style = "-"
			}
			if _, err := fmt.Fprintf(w, "%s:%d:%d-%d\t%s\t%q\n", file, tok.Line+1, tok.Start, tok.End, style, tok.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
