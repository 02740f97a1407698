// Package langs holds small embedded-language modes used inside mixed
// documents.
package langs

import (
	"fmt"
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
)

// RegisterAll defines every mode of this package on r, together with its
// MIME aliases.
func RegisterAll(r *modes.Registry) error {
	defs := []struct {
		name    string
		mime    string
		factory modes.Factory
	}{
		{CalcName, "text/x-calc", newCalcFromOptions},
		{TextName, "text/plain", func(*modes.Registry, map[string]any) (modes.Mode, error) {
			return NewText(), nil
		}},
	}
	for _, def := range defs {
		if err := r.Define(def.name, def.factory); err != nil {
			return fmt.Errorf("register %s: %w", def.name, err)
		}
		if err := r.DefineMIME(def.mime, modes.Spec{Name: def.name}); err != nil {
			return fmt.Errorf("register %s: %w", def.mime, err)
		}
	}
	return nil
}

// intOption reads a numeric option. Keys match ignoring case since
// configuration loaders may lower-case them.
func intOption(options map[string]any, key string, fallback int) (int, error) {
	var v any
	found := false
	for k, val := range options {
		if strings.EqualFold(k, key) {
			v, found = val, true
			break
		}
	}
	if !found {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("option %q: expected a number, got %T", key, v)
	}
}

func defaultIndentUnit(n int) int {
	if n <= 0 {
		return stream.DefaultIndentUnit
	}
	return n
}
