package engine

import (
	"strings"

	"gitie/pkg/catalog"
)

// DefaultProduct is the name written on the banner's second line.
const DefaultProduct = "Gitie"

// Generator assembles documents. The zero value uses DefaultProduct.
type Generator struct {
	Product string
}

// Banner returns the two comment lines and the blank line that open every
// generated document.
func (g Generator) Banner() string {
	product := g.Product
	if product == "" {
		product = DefaultProduct
	}
	return "# Generated .gitignore file\n# Created with " + product + "\n\n"
}

// Generate writes the banner followed by one "# <label>" block per selected
// id that resolves in c. Unresolved ids contribute nothing. Repeated lines
// across blocks are kept as they are.
func (g Generator) Generate(c *catalog.Catalog, sel Selection) string {
	var b strings.Builder
	b.WriteString(g.Banner())
	for _, id := range sel {
		it, ok := c.FindItem(id)
		if !ok {
			continue
		}
		b.WriteString("# ")
		b.WriteString(it.Label)
		b.WriteString("\n")
		b.WriteString(it.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

// GenerateDocument is Generator{}.Generate.
func GenerateDocument(c *catalog.Catalog, sel Selection) string {
	return Generator{}.Generate(c, sel)
}
