// Package levels provides level packs: named sequences of schemas with an
// optional symbol legend, loaded from YAML files or the embedded default.
package levels

import (
	_ "embed"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/platformer/internal/actors"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

//go:embed defaults/classic.yaml
var defaultPackYAML []byte

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	Name   string            `yaml:"name"`
	Legend map[string]string `yaml:"legend,omitempty"`
	Levels []YAMLLevel       `yaml:"levels"`
}

// YAMLLevel represents a single schema in YAML format.
type YAMLLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// Level is one schema of a pack.
type Level struct {
	ID   string
	Name string
	Rows []string
}

// Pack is a parsed level pack ready for use.
type Pack struct {
	Name     string
	Legend   map[rune]string
	Levels   []Level
	FilePath string
}

// DefaultPack returns the embedded classic pack.
func DefaultPack() Pack {
	pack, err := ParseYAML(defaultPackYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded pack is invalid: %v", err))
	}
	return pack
}

// ParseYAML parses a level pack. A missing legend means the standard
// dictionary; every legend entry must be a single symbol naming a
// registered actor.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yp.Levels) == 0 {
		return Pack{}, fmt.Errorf("pack %q has no levels", yp.Name)
	}

	legend := make(map[rune]string)
	if len(yp.Legend) == 0 {
		for sym, name := range actors.StandardLegend {
			legend[sym] = name
		}
	} else {
		for key, name := range yp.Legend {
			sym, size := utf8.DecodeRuneInString(key)
			if size == 0 || size != len(key) {
				return Pack{}, fmt.Errorf("legend key %q must be a single symbol", key)
			}
			if sym == 'x' || sym == '!' {
				return Pack{}, fmt.Errorf("legend key %q is reserved for obstacles", key)
			}
			if !registry.Exists(name) {
				return Pack{}, fmt.Errorf("legend key %q: unknown actor %q", key, name)
			}
			legend[sym] = name
		}
	}

	pack := Pack{
		Name:   yp.Name,
		Legend: legend,
		Levels: make([]Level, 0, len(yp.Levels)),
	}

	seen := make(map[string]bool, len(yp.Levels))
	for i, yl := range yp.Levels {
		id := yl.ID
		if id == "" {
			id = fmt.Sprintf("level-%d", i+1)
		}
		if seen[id] {
			return Pack{}, fmt.Errorf("duplicate level id %q", id)
		}
		seen[id] = true

		name := yl.Name
		if name == "" {
			name = id
		}
		pack.Levels = append(pack.Levels, Level{ID: id, Name: name, Rows: yl.Rows})
	}

	return pack, nil
}

// Parser builds a level parser for this pack's legend. Actors that need
// randomness draw from rng.
func (p Pack) Parser(rng *rand.Rand) (*level.Parser, error) {
	dict, err := registry.Dictionary(p.Legend, rng)
	if err != nil {
		return nil, fmt.Errorf("pack %q: %w", p.Name, err)
	}
	return level.NewParser(dict), nil
}

// Schemas returns the rows of every level, in pack order.
func (p Pack) Schemas() [][]string {
	schemas := make([][]string, len(p.Levels))
	for i, l := range p.Levels {
		schemas[i] = l.Rows
	}
	return schemas
}

// LevelByID returns a level by its ID.
func (p Pack) LevelByID(id string) (Level, bool) {
	for _, l := range p.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}
