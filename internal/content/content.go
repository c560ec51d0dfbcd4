// Package content holds the static game content tables: district
// definitions, enemy and boss stat blocks, NPC dialogue, exploration spots,
// the shop catalog, and house bonuses. Districts are loaded once from an
// embedded YAML document into an immutable lookup structure.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/districts.yaml
var districtsYAML []byte

// Enemy is a stat block for a regular district enemy. A zero Attack or Gold
// falls back to the combat resolver defaults.
type Enemy struct {
	Name   string `yaml:"name"`
	HP     int    `yaml:"hp"`
	Attack int    `yaml:"attack"`
	Gold   int    `yaml:"gold"`
}

// Boss is the stat block for a district's boss, engaged at 100% progress.
type Boss struct {
	Name     string   `yaml:"name"`
	HP       int      `yaml:"hp"`
	Attack   int      `yaml:"attack"`
	Gold     int      `yaml:"gold"`
	Dialogue []string `yaml:"dialogue"`
}

// NPC is a character encountered at progress checkpoints.
type NPC struct {
	Name     string   `yaml:"name"`
	Dialogue []string `yaml:"dialogue"`
}

// District is one themed stage. Progress through it is tracked 0-100%.
type District struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Enemies     []Enemy  `yaml:"enemies"`
	NPCs        []NPC    `yaml:"npcs"`
	Exploration []string `yaml:"exploration"`
	Boss        Boss     `yaml:"boss"`
}

// Tables is the immutable content lookup built from the embedded data.
type Tables struct {
	districts []District
	byName    map[string]int
}

// Load parses and validates the embedded district tables.
func Load() (*Tables, error) {
	var doc struct {
		Districts []District `yaml:"districts"`
	}
	if err := yaml.Unmarshal(districtsYAML, &doc); err != nil {
		return nil, fmt.Errorf("content: parse districts: %w", err)
	}
	if len(doc.Districts) == 0 {
		return nil, fmt.Errorf("content: no districts defined")
	}

	byName := make(map[string]int, len(doc.Districts))
	for i, d := range doc.Districts {
		if d.ID != i+1 {
			return nil, fmt.Errorf("content: district %q has id %d, want %d", d.Name, d.ID, i+1)
		}
		if len(d.Enemies) != 3 {
			return nil, fmt.Errorf("content: district %q has %d enemies, want 3", d.Name, len(d.Enemies))
		}
		if d.Boss.Name == "" {
			return nil, fmt.Errorf("content: district %q has no boss", d.Name)
		}
		if _, dup := byName[strings.ToLower(d.Name)]; dup {
			return nil, fmt.Errorf("content: duplicate district name %q", d.Name)
		}
		byName[strings.ToLower(d.Name)] = i
	}

	return &Tables{districts: doc.Districts, byName: byName}, nil
}

// Count returns the number of districts.
func (t *Tables) Count() int {
	return len(t.districts)
}

// Districts returns every district in unlock order.
func (t *Tables) Districts() []District {
	return t.districts
}

// District returns the district with the given 1-based identifier.
func (t *Tables) District(id int) (District, bool) {
	if id < 1 || id > len(t.districts) {
		return District{}, false
	}
	return t.districts[id-1], true
}

// DistrictByName looks a district up by name, case-insensitively.
func (t *Tables) DistrictByName(name string) (District, bool) {
	i, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return District{}, false
	}
	return t.districts[i], true
}

// Unlockable returns the districts currently open to a player: every
// completed district stays replayable, plus the first district and the one
// immediately past the furthest completion.
func (t *Tables) Unlockable(completed []string) []District {
	done := make(map[string]bool, len(completed))
	furthest := 0
	for _, name := range completed {
		if d, ok := t.DistrictByName(name); ok {
			done[strings.ToLower(name)] = true
			if d.ID > furthest {
				furthest = d.ID
			}
		}
	}

	var out []District
	for _, d := range t.districts {
		switch {
		case done[strings.ToLower(d.Name)]:
			out = append(out, d)
		case d.ID == 1, d.ID == furthest+1:
			out = append(out, d)
		}
	}
	return out
}
