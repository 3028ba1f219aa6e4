// Package engine turns a catalog and an ordered selection of item ids into a
// combined .gitignore document. Every function here is pure: the caller owns
// the selection value and threads it through.
package engine

import (
	"fmt"

	"gitie/pkg/catalog"
)

// Selection is an ordered list of distinct item ids. Order is insertion
// order and decides the order of blocks in the generated document.
type Selection []string

// Toggle removes id when it is present and appends it otherwise. The input
// is never modified.
func Toggle(sel Selection, id string) Selection {
	out := make(Selection, 0, len(sel)+1)
	found := false
	for _, s := range sel {
		if s == id {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Clear returns the empty selection.
func Clear() Selection {
	return Selection{}
}

// Contains reports whether id is selected.
func Contains(sel Selection, id string) bool {
	for _, s := range sel {
		if s == id {
			return true
		}
	}
	return false
}

// Labels returns the labels of the selected items that exist in c, in
// selection order. Stale ids are skipped.
func Labels(c *catalog.Catalog, sel Selection) []string {
	labels := make([]string, 0, len(sel))
	for _, id := range sel {
		if it, ok := c.FindItem(id); ok {
			labels = append(labels, it.Label)
		}
	}
	return labels
}

// Unknown returns the ids in sel that do not resolve in c.
func Unknown(c *catalog.Catalog, sel Selection) []string {
	var missing []string
	for _, id := range sel {
		if _, ok := c.FindItem(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Summary renders the selected-count line, e.g. "1 item selected".
func Summary(n int) string {
	if n == 1 {
		return "1 item selected"
	}
	return fmt.Sprintf("%d items selected", n)
}
