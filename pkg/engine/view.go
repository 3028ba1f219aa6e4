package engine

import (
	"strings"

	"gitie/pkg/catalog"
)

// Mode is what the item list is currently showing.
type Mode int

const (
	// ModeBrowse lists the items of the active category.
	ModeBrowse Mode = iota
	// ModeSearch lists every item whose label matches the query.
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "browse"
}

// View is the list of items to display and the mode that produced it.
type View struct {
	Mode  Mode
	Query string
	Items []catalog.Item
}

// ViewFor browses activeCategory when the trimmed query is empty and
// searches the whole catalog otherwise.
func ViewFor(c *catalog.Catalog, query, activeCategory string) View {
	q := strings.TrimSpace(query)
	if q == "" {
		return View{Mode: ModeBrowse, Items: c.CategoryItems(activeCategory)}
	}
	return View{Mode: ModeSearch, Query: q, Items: c.SearchFilter(q)}
}

// EmptyMessage is shown when the view has no items.
func (v View) EmptyMessage() string {
	if v.Mode == ModeSearch {
		return "No matches found for your search"
	}
	return "No items available in this category"
}
