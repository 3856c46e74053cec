// Package data owns the static mod catalog: named modifiers and the
// stat bonuses they contribute. The default catalog is embedded; custom
// catalogs load from yaml files or from the database store.
package data

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// ErrUnknownMod marks a mod identifier absent from the catalog.
// Surfaced before the engine runs; the engine never sees unknown names.
var ErrUnknownMod = errors.New("unknown mod")

//go:embed mods.yaml
var defaultCatalogYAML []byte

// Catalog is a read-only lookup table of named mod bonuses. It is
// injected into request-scoped computations, never global mutable
// state, so tests can substitute synthetic catalogs.
type Catalog struct {
	mods  map[string]model.ModBonus
	names []string
}

// New builds a catalog from already-parsed bonuses keyed by mod name.
func New(mods map[string]model.ModBonus) *Catalog {
	c := &Catalog{
		mods:  make(map[string]model.ModBonus, len(mods)),
		names: make([]string, 0, len(mods)),
	}
	for name, m := range mods {
		m.Name = name
		c.mods[name] = m
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// LoadDefault parses the embedded catalog.
func LoadDefault() (*Catalog, error) {
	c, err := parseCatalog(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded mod catalog: %w", err)
	}
	slog.Info("loaded mod catalog", "source", "embedded", "count", c.Len())
	return c, nil
}

// LoadFile parses a yaml catalog from disk. The file uses the same
// shape as the embedded catalog: mod name → stat bonuses.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mod catalog: %w", err)
	}
	c, err := parseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing mod catalog %s: %w", path, err)
	}
	slog.Info("loaded mod catalog", "source", path, "count", c.Len())
	return c, nil
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var entries map[string]model.ModBonus
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	for name, m := range entries {
		for e := range m.Elements {
			if !model.ValidElement(e) {
				return nil, fmt.Errorf("mod %q: unknown element type %q", name, e)
			}
		}
	}
	return New(entries), nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.mods) }

// Names returns all mod names in sorted order.
func (c *Catalog) Names() []string { return c.names }

// Get returns the bonus set of one mod.
func (c *Catalog) Get(name string) (model.ModBonus, bool) {
	m, ok := c.mods[name]
	return m, ok
}

// Bonuses resolves a list of mod identifiers. Any unknown identifier
// fails the whole lookup with ErrUnknownMod.
func (c *Catalog) Bonuses(names []string) ([]model.ModBonus, error) {
	out := make([]model.ModBonus, 0, len(names))
	for _, name := range names {
		m, ok := c.mods[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMod, name)
		}
		out = append(out, m)
	}
	return out, nil
}

// Search returns mods whose name contains the query, case-insensitive,
// in sorted name order.
func (c *Catalog) Search(query string) []model.ModBonus {
	query = strings.ToLower(query)
	var out []model.ModBonus
	for _, name := range c.names {
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, c.mods[name])
		}
	}
	return out
}
