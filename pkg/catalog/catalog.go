// Package catalog holds the curated set of ignore templates, grouped by
// category, that gitie assembles documents from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Item is one selectable template.
type Item struct {
	ID      string   `yaml:"id" json:"id"`
	Label   string   `yaml:"label" json:"label"`
	Icon    string   `yaml:"icon" json:"icon"`
	Content string   `yaml:"content" json:"content,omitempty"`
	Markers []string `yaml:"markers,omitempty" json:"markers,omitempty"`
}

// Category is a named, ordered group of items. It only affects display.
type Category struct {
	Name  string `yaml:"name" json:"name"`
	Items []Item `yaml:"items" json:"items"`
}

// Catalog is the ordered list of categories. It is read-only once loaded.
type Catalog struct {
	categories []Category
	index      map[string]location
}

type location struct {
	category int
	item     int
}

type document struct {
	Categories []Category `yaml:"categories"`
}

//go:embed catalog.yaml
var builtinYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded data does
// not validate, since that can only be an authoring mistake.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		if err := c.Validate(); err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes a catalog from YAML.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(doc.Categories), nil
}

// Parse decodes a catalog from a YAML document held in memory.
func Parse(data []byte) (*Catalog, error) {
	return Load(bytes.NewReader(data))
}

// New builds a catalog from categories. The slice is copied; later changes
// to it are not observed.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		index:      make(map[string]location),
	}
	for ci, cat := range categories {
		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		c.categories[ci] = Category{Name: cat.Name, Items: items}
		for ii, it := range items {
			// First occurrence wins, same as a front-to-back scan.
			if _, ok := c.index[it.ID]; !ok {
				c.index[it.ID] = location{category: ci, item: ii}
			}
		}
	}
	return c
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Items: cloneItems(cat.Items)}
	}
	return out
}

// CategoryNames returns the category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Len reports the number of items across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Items)
	}
	return n
}

// FindItem returns the first item with the given id. The boolean is false
// when no item matches; a stale id is not an error.
func (c *Catalog) FindItem(id string) (Item, bool) {
	loc, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.categories[loc.category].Items[loc.item], true
}

// OwningCategory returns the name of the category that holds id.
func (c *Catalog) OwningCategory(id string) (string, bool) {
	loc, ok := c.index[id]
	if !ok {
		return "", false
	}
	return c.categories[loc.category].Name, true
}

// CategoryItems returns the items of the category with exactly that name, or
// an empty slice when there is no such category.
func (c *Catalog) CategoryItems(name string) []Item {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cloneItems(cat.Items)
		}
	}
	return []Item{}
}

// SearchFilter returns every item whose label contains the trimmed query,
// ignoring case, in catalog order. An empty query matches every item;
// callers decide whether to search at all.
func (c *Catalog) SearchFilter(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Item{}
	for _, cat := range c.categories {
		for _, it := range cat.Items {
			if strings.Contains(strings.ToLower(it.Label), q) {
				out = append(out, it)
			}
		}
	}
	return out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
