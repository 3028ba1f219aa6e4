package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"gitie/pkg/ignore"
)

// Validate checks the authoring invariants: ids are non-empty and unique
// across the whole catalog, category names are unique, every item has a
// label, and every content line compiles as an ignore pattern.
func (c *Catalog) Validate() error {
	var err error
	seenIDs := make(map[string]string)
	seenCategories := make(map[string]bool)

	for _, cat := range c.categories {
		if strings.TrimSpace(cat.Name) == "" {
			err = multierr.Append(err, fmt.Errorf("category with empty name"))
		}
		if seenCategories[cat.Name] {
			err = multierr.Append(err, fmt.Errorf("duplicate category %q", cat.Name))
		}
		seenCategories[cat.Name] = true

		for _, it := range cat.Items {
			if strings.TrimSpace(it.ID) == "" {
				err = multierr.Append(err, fmt.Errorf("item %q in category %q has an empty id", it.Label, cat.Name))
				continue
			}
			if owner, ok := seenIDs[it.ID]; ok {
				err = multierr.Append(err, fmt.Errorf("duplicate id %q in categories %q and %q", it.ID, owner, cat.Name))
			} else {
				seenIDs[it.ID] = cat.Name
			}
			if strings.TrimSpace(it.Label) == "" {
				err = multierr.Append(err, fmt.Errorf("item %q has an empty label", it.ID))
			}
			if cerr := ignore.New(nil).CompileText(it.ID, it.Content); cerr != nil {
				err = multierr.Append(err, fmt.Errorf("item %q: %w", it.ID, cerr))
			}
		}
	}
	return err
}
