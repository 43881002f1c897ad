// Package catalog holds the fixed set of parking locations and their hourly rates.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"techpark/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var defaultLocations []byte

type file struct {
	Locations []models.Location `yaml:"locations"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	list []models.Location
	byID map[string]models.Location
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultLocations)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded locations invalid: %v", err))
	}
	return c
}

// Load reads the catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog. Ids must be unique and non-empty; rates must not be negative.
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	if len(f.Locations) == 0 {
		return nil, fmt.Errorf("parse locations: no locations defined")
	}

	c := &Catalog{
		list: make([]models.Location, 0, len(f.Locations)),
		byID: make(map[string]models.Location, len(f.Locations)),
	}
	for i, loc := range f.Locations {
		loc.ID = strings.TrimSpace(loc.ID)
		if loc.ID == "" {
			return nil, fmt.Errorf("parse locations: entry %d has no id", i)
		}
		if _, dup := c.byID[loc.ID]; dup {
			return nil, fmt.Errorf("parse locations: duplicate id %q", loc.ID)
		}
		if loc.Rate < 0 {
			return nil, fmt.Errorf("parse locations: %s has negative rate", loc.ID)
		}
		c.list = append(c.list, loc)
		c.byID[loc.ID] = loc
	}
	return c, nil
}

// All returns a copy of the locations in file order.
func (c *Catalog) All() []models.Location {
	out := make([]models.Location, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Catalog) Lookup(id string) (models.Location, bool) {
	loc, ok := c.byID[strings.TrimSpace(id)]
	return loc, ok
}

// Rate is the hourly rate of id, 0 for unknown ids.
func (c *Catalog) Rate(id string) int64 {
	return c.byID[strings.TrimSpace(id)].Rate
}

// Name is the display name of id, or id itself when unknown.
func (c *Catalog) Name(id string) string {
	if loc, ok := c.Lookup(id); ok && loc.Name != "" {
		return loc.Name
	}
	return id
}
