// Package config loads camelcards settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/internal/deck"
)

// DefaultFile is the config file read when none is given
const DefaultFile = "camelcards.hcl"

// Config represents the complete camelcards configuration
//
//	log_level = "debug"
//	strict    = true
//	variant   = "wildcard"
//
//	mapping {
//	  wildcard = "2"
//	  values   = { "2" = 1, "3" = 3, ... }
//	}
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Strict   bool           `hcl:"strict,optional"`
	Variant  string         `hcl:"variant,optional"`
	Mapping  *MappingConfig `hcl:"mapping,block"`
}

// MappingConfig defines a custom rank mapping. A non-empty wildcard makes it
// a wildcard mapping.
type MappingConfig struct {
	Wildcard string         `hcl:"wildcard,optional"`
	Values   map[string]int `hcl:"values"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Variant:  deck.Standard.String(),
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Variant == "" {
		config.Variant = deck.Standard.String()
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if _, err := deck.ParseVariant(c.Variant); err != nil {
		return err
	}
	if c.Mapping != nil {
		if _, err := c.Mapping.build(); err != nil {
			return fmt.Errorf("mapping: %w", err)
		}
	}
	return nil
}

// RankMapping returns the mapping to rank hands with: the custom mapping
// block if present, otherwise the built-in mapping for Variant.
func (c *Config) RankMapping() (*deck.Mapping, error) {
	if c.Mapping != nil {
		m, err := c.Mapping.build()
		if err != nil {
			return nil, fmt.Errorf("mapping: %w", err)
		}
		return m, nil
	}
	return BuiltinMapping(c.Variant)
}

// BuiltinMapping returns StandardMapping or WildcardMapping by variant name
func BuiltinMapping(variant string) (*deck.Mapping, error) {
	v, err := deck.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	if v == deck.Wildcard {
		return deck.WildcardMapping, nil
	}
	return deck.StandardMapping, nil
}

func (mc *MappingConfig) build() (*deck.Mapping, error) {
	values := make(map[rune]int, len(mc.Values))
	for k, v := range mc.Values {
		r, err := singleSymbol(k)
		if err != nil {
			return nil, fmt.Errorf("values: %w", err)
		}
		values[r] = v
	}

	if mc.Wildcard == "" {
		return deck.NewMapping(deck.Standard, 0, values)
	}
	w, err := singleSymbol(mc.Wildcard)
	if err != nil {
		return nil, fmt.Errorf("wildcard: %w", err)
	}
	return deck.NewMapping(deck.Wildcard, w, values)
}

func singleSymbol(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single card symbol", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
