package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location is one named catalog entry.
type Location struct {
	Name      string  `yaml:"name"`
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
	Height    float64 `yaml:"height"`
}

// Catalog is a loaded set of named locations. Lookup is
// case-insensitive; Names preserves file order.
type Catalog struct {
	locations []Location
	byName    map[string]Location
}

// LoadCatalog reads a YAML sequence of locations from path.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var locs []Location
	if err := yaml.Unmarshal(b, &locs); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	c := &Catalog{
		locations: locs,
		byName:    make(map[string]Location, len(locs)),
	}
	for _, loc := range locs {
		if loc.Name == "" {
			return nil, fmt.Errorf("parse catalog %s: entry without a name", path)
		}
		c.byName[strings.ToLower(loc.Name)] = loc
	}
	return c, nil
}

// Names returns every location name in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.locations))
	for _, loc := range c.locations {
		out = append(out, loc.Name)
	}
	return out
}

// Lookup finds a location by name, ignoring case.
func (c *Catalog) Lookup(name string) (Location, bool) {
	loc, ok := c.byName[strings.ToLower(name)]
	return loc, ok
}
