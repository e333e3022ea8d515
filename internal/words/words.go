// Package words supplies random words from categorized, read-only tables.
//
// Tables are plain data: Default returns the built-in dictionaries and
// LoadTable reads a YAML replacement, so tests and deployments can swap the
// vocabulary without touching the composers.
package words

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vaultpass/credgen/internal/random"
)

// Theme is a curated adjective/noun pair list.
type Theme struct {
	Adjectives []string `yaml:"adjectives" json:"adjectives"`
	Nouns      []string `yaml:"nouns" json:"nouns"`
}

// Table holds every word category the composers draw from.
type Table struct {
	Adjectives []string         `yaml:"adjectives"`
	Nouns      []string         `yaml:"nouns"`
	TechTerms  []string         `yaml:"tech_terms"`
	Prefixes   []string         `yaml:"prefixes"`
	Suffixes   []string         `yaml:"suffixes"`
	Themes     map[string]Theme `yaml:"themes"`
}

// Default returns a copy of the built-in table.
func Default() Table {
	themes := make(map[string]Theme, len(defaultThemes))
	for name, th := range defaultThemes {
		themes[name] = Theme{Adjectives: slices.Clone(th.Adjectives), Nouns: slices.Clone(th.Nouns)}
	}
	return Table{
		Adjectives: slices.Clone(defaultAdjectives),
		Nouns:      slices.Clone(defaultNouns),
		TechTerms:  slices.Clone(defaultTechTerms),
		Prefixes:   slices.Clone(defaultPrefixes),
		Suffixes:   slices.Clone(defaultSuffixes),
		Themes:     themes,
	}
}

// LoadTable reads a YAML table from path. Categories left empty keep the
// built-in words; themes are merged by name.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading word table: %w", err)
	}

	var custom Table
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return Table{}, fmt.Errorf("parsing word table %s: %w", path, err)
	}

	return custom.withDefaults(), nil
}

func (t Table) withDefaults() Table {
	def := Default()
	if len(t.Adjectives) == 0 {
		t.Adjectives = def.Adjectives
	}
	if len(t.Nouns) == 0 {
		t.Nouns = def.Nouns
	}
	if len(t.TechTerms) == 0 {
		t.TechTerms = def.TechTerms
	}
	if len(t.Prefixes) == 0 {
		t.Prefixes = def.Prefixes
	}
	if len(t.Suffixes) == 0 {
		t.Suffixes = def.Suffixes
	}
	themes := def.Themes
	maps.Copy(themes, t.Themes)
	t.Themes = themes
	return t
}

// Supplier draws words from a table. Every draw is independent and with
// replacement.
type Supplier struct {
	table Table
	src   random.Source
}

// NewSupplier binds a table to a random source.
func NewSupplier(table Table, src random.Source) *Supplier {
	return &Supplier{table: table, src: src}
}

func (s *Supplier) NextAdjective() string { return s.pick(s.table.Adjectives) }
func (s *Supplier) NextNoun() string      { return s.pick(s.table.Nouns) }
func (s *Supplier) NextTechTerm() string  { return s.pick(s.table.TechTerms) }
func (s *Supplier) NextPrefix() string    { return s.pick(s.table.Prefixes) }
func (s *Supplier) NextSuffix() string    { return s.pick(s.table.Suffixes) }

// ThemedPair returns an adjective and a noun from the named theme. Unknown or
// empty themes fall back to the general lists.
func (s *Supplier) ThemedPair(theme string) (adjective, noun string) {
	th, ok := s.table.Themes[theme]
	if !ok || len(th.Adjectives) == 0 || len(th.Nouns) == 0 {
		return s.NextAdjective(), s.NextNoun()
	}
	return s.pick(th.Adjectives), s.pick(th.Nouns)
}

func (s *Supplier) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[s.src.IntN(len(list))]
}
