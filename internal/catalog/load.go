package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog bundles every reference record the simulator needs, keyed by
// stable identifiers, plus the content release version they came from.
// The core never fetches this itself: the surrounding application loads
// it once and passes records in.
type Catalog struct {
	Version   string     `yaml:"version"`
	Champions []Champion `yaml:"champions"`
	Items     []Item     `yaml:"items"`
	Runes     []Rune     `yaml:"runes"`
}

// Champion returns the champion with the given numeric id, or nil.
func (c *Catalog) Champion(id int) *Champion {
	for i := range c.Champions {
		if c.Champions[i].ID == id {
			return &c.Champions[i]
		}
	}
	return nil
}

// Item returns the item with the given id, or nil.
func (c *Catalog) Item(id int) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Rune returns the rune with the given id, or nil.
func (c *Catalog) Rune(id int) *Rune {
	for i := range c.Runes {
		if c.Runes[i].ID == id {
			return &c.Runes[i]
		}
	}
	return nil
}

// LoadDir reads champions.yaml, items.yaml and runes.yaml from dir and
// merges them into one Catalog. Missing files are skipped so a partial
// catalog (champions only) still loads.
func LoadDir(dir string) (*Catalog, error) {
	cat := &Catalog{}

	for _, name := range []string{"champions.yaml", "items.yaml", "runes.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Debug("catalog file absent, skipping", "path", path)
				continue
			}
			return nil, fmt.Errorf("read catalog file %s: %w", path, err)
		}

		var part Catalog
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
		}

		if part.Version != "" {
			cat.Version = part.Version
		}
		cat.Champions = append(cat.Champions, part.Champions...)
		cat.Items = append(cat.Items, part.Items...)
		cat.Runes = append(cat.Runes, part.Runes...)
	}

	slog.Info("catalog loaded",
		"version", cat.Version,
		"champions", len(cat.Champions),
		"items", len(cat.Items),
		"runes", len(cat.Runes))

	return cat, nil
}
