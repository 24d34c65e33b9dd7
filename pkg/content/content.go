// Package content holds the hat and item lists the editor can hand out.
//
// The lists are data, not code: a default set is embedded and a YAML file
// with the same shape can replace it.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTables []byte

// DLCSet reports which DLC packs a savegame has
type DLCSet interface {
	HasDLC(n int) bool
}

// Tables is a complete set of giveaway lists
type Tables struct {
	Hats  HatTables   `yaml:"hats"`
	Items []ItemGroup `yaml:"items"`
}

// HatTables lists hats available to everyone and hats per DLC pack
type HatTables struct {
	Base []string         `yaml:"base"`
	DLC  map[int][]string `yaml:"dlc"`
}

// ItemGroup is a run of items, optionally gated on a DLC pack
type ItemGroup struct {
	Label       string   `yaml:"label,omitempty"`
	RequiresDLC int      `yaml:"requires_dlc,omitempty"`
	WithoutDLC  int      `yaml:"without_dlc,omitempty"`
	Names       []string `yaml:"names"`
}

// Default returns the embedded tables
func Default() (*Tables, error) {
	return Parse(defaultTables)
}

// Load reads tables from a YAML file
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, or the embedded tables when path is empty
func LoadOrDefault(path string) (*Tables, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates tables
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse content tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that names fit the savegame string format and that no
// group is gated both ways
func (t *Tables) Validate() error {
	check := func(where string, names []string) error {
		for _, name := range names {
			if name == "" || len(name) > 0xff {
				return fmt.Errorf("%s: invalid name %q", where, name)
			}
		}
		return nil
	}

	if err := check("hats.base", t.Hats.Base); err != nil {
		return err
	}
	for n, names := range t.Hats.DLC {
		if n <= 0 {
			return fmt.Errorf("hats.dlc: invalid DLC number %d", n)
		}
		if err := check(fmt.Sprintf("hats.dlc.%d", n), names); err != nil {
			return err
		}
	}
	for i, g := range t.Items {
		if g.RequiresDLC != 0 && g.WithoutDLC != 0 {
			return fmt.Errorf("items[%d]: requires_dlc and without_dlc are exclusive", i)
		}
		if err := check(fmt.Sprintf("items[%d]", i), g.Names); err != nil {
			return err
		}
	}
	return nil
}

// HatsFor returns the base hats followed by the hats of every DLC pack the
// savegame has, in DLC order
func (t *Tables) HatsFor(s DLCSet) []string {
	hats := append([]string(nil), t.Hats.Base...)

	packs := make([]int, 0, len(t.Hats.DLC))
	for n := range t.Hats.DLC {
		packs = append(packs, n)
	}
	sort.Ints(packs)

	for _, n := range packs {
		if s.HasDLC(n) {
			hats = append(hats, t.Hats.DLC[n]...)
		}
	}
	return hats
}

// ItemsFor returns the items of every group that applies to the savegame
func (t *Tables) ItemsFor(s DLCSet) []string {
	var items []string
	for _, g := range t.Items {
		if g.Applies(s) {
			items = append(items, g.Names...)
		}
	}
	return items
}

// Applies reports whether the group's DLC gate lets it through
func (g ItemGroup) Applies(s DLCSet) bool {
	if g.RequiresDLC != 0 && !s.HasDLC(g.RequiresDLC) {
		return false
	}
	if g.WithoutDLC != 0 && s.HasDLC(g.WithoutDLC) {
		return false
	}
	return true
}
