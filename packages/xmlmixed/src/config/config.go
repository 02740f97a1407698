// Package config loads tokenizer settings and tag-to-mode rules.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"xmlmixed-go/packages/xmlmixed/src/core"
	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/stream"
	"xmlmixed-go/packages/xmlmixed/src/xml"
	"xmlmixed-go/packages/xmlmixed/src/xmlmixed"
)

// EnvPrefix prefixes environment variables that override settings, e.g.
// XMLMIXED_INDENTUNIT.
const EnvPrefix = "XMLMIXED"

var ErrInvalidRule = errors.New("invalid mode rule")

// ModeRule selects an embedded mode for matching tags. Tag matches the tag
// name ignoring case; "*" matches any tag. When Attribute is set the tag
// must carry it, with value Value if that is set too.
type ModeRule struct {
	Tag               string         `mapstructure:"tag"`
	Attribute         string         `mapstructure:"attribute"`
	Value             string         `mapstructure:"value"`
	Mode              string         `mapstructure:"mode"`
	UseAttributeValue bool           `mapstructure:"useAttributeValue"`
	Options           map[string]any `mapstructure:"options"`
}

// Config holds everything needed to build a mixed mode
type Config struct {
	TabSize    int         `mapstructure:"tabSize"`
	IndentUnit int         `mapstructure:"indentUnit"`
	XML        xml.Options `mapstructure:"xml"`
	Modes      []ModeRule  `mapstructure:"modes"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		TabSize:    stream.DefaultTabSize,
		IndentUnit: stream.DefaultIndentUnit,
	}
}

// Load reads a configuration file. The format follows the extension
// (yaml, json, toml, ...).
func Load(path string) (config Config, err error) {
	v := newViper()
	v.SetConfigFile(path)

	err = v.ReadInConfig()
	if err != nil {
		err = fmt.Errorf("read config %s: %w", path, err)
		return
	}
	return decode(v)
}

// Read parses configuration of the given format from r
func Read(r io.Reader, format string) (config Config, err error) {
	v := newViper()
	v.SetConfigType(format)

	err = v.ReadConfig(r)
	if err != nil {
		err = fmt.Errorf("read %s config: %w", format, err)
		return
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Default()
	v.SetDefault("tabSize", def.TabSize)
	v.SetDefault("indentUnit", def.IndentUnit)
	v.SetDefault("xml.htmlMode", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (config Config, err error) {
	err = v.Unmarshal(&config)
	if err != nil {
		err = fmt.Errorf("decode config: %w", err)
		return
	}
	err = config.Validate()
	return
}

// Validate checks every mode rule
func (c Config) Validate() error {
	for i, rule := range c.Modes {
		if strings.TrimSpace(rule.Tag) == "" {
			return fmt.Errorf("modes[%d]: tag is empty: %w", i, ErrInvalidRule)
		}
		if rule.UseAttributeValue && rule.Attribute == "" {
			return fmt.Errorf("modes[%d]: useAttributeValue needs an attribute: %w", i, ErrInvalidRule)
		}
		if !rule.UseAttributeValue && rule.Mode == "" {
			return fmt.Errorf("modes[%d]: mode is empty: %w", i, ErrInvalidRule)
		}
	}
	return nil
}

// Matches reports whether the rule applies to tag
func (r ModeRule) Matches(tag *xmlmixed.Tag) bool {
	if r.Tag != "*" && !core.EqualFoldASCII(r.Tag, tag.Name) {
		return false
	}
	if r.Attribute == "" {
		return true
	}
	value, ok := tag.Attr(r.Attribute)
	if !ok {
		return false
	}
	return r.Value == "" || r.Value == value
}

// Descriptor returns the mode descriptor the rule yields for tag
func (r ModeRule) Descriptor(tag *xmlmixed.Tag) any {
	name := r.Mode
	if r.UseAttributeValue {
		name, _ = tag.Attr(r.Attribute)
	}
	if name == "" {
		return nil
	}
	if r.Options != nil {
		return modes.Spec{Name: name, Options: r.Options}
	}
	return name
}

// DecideMode builds a mode policy from the rules; the first matching rule
// wins.
func (c Config) DecideMode() func(*xmlmixed.Tag) any {
	rules := append([]ModeRule(nil), c.Modes...)
	return func(tag *xmlmixed.Tag) any {
		for _, rule := range rules {
			if rule.Matches(tag) {
				return rule.Descriptor(tag)
			}
		}
		return nil
	}
}

// MixedOptions builds the options of a mixed mode resolving descriptors
// against r
func (c Config) MixedOptions(r *modes.Registry, logger *zerolog.Logger) xmlmixed.Options {
	return xmlmixed.Options{
		DecideMode: c.DecideMode(),
		XMLOptions: c.XML,
		IndentUnit: c.IndentUnit,
		Registry:   r,
		Logger:     logger,
	}
}
