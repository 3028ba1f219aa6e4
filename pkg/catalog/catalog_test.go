package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitie/pkg/catalog"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{"Web", "Mobile", "Languages", "DevOps", "Database", "OS", "Editors"}, c.CategoryNames())
	assert.Equal(t, 27, c.Len())
	require.NoError(t, c.Validate())

	node, ok := c.FindItem("node")
	require.True(t, ok)
	assert.Equal(t, "Node.js", node.Label)
	assert.True(t, strings.HasPrefix(node.Content, "# Dependencies\nnode_modules/\n"))
	assert.True(t, strings.HasSuffix(node.Content, "out\ndist"), "content keeps no trailing newline")
}

func TestFindItem(t *testing.T) {
	c := catalog.New([]catalog.Category{
		{Name: "A", Items: []catalog.Item{{ID: "x", Label: "First"}}},
		{Name: "B", Items: []catalog.Item{{ID: "y", Label: "Y"}, {ID: "x", Label: "Second"}}},
	})

	t.Run("first match wins", func(t *testing.T) {
		it, ok := c.FindItem("x")
		require.True(t, ok)
		assert.Equal(t, "First", it.Label)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := c.FindItem("missing-id")
		assert.False(t, ok)
	})

	t.Run("owning category", func(t *testing.T) {
		name, ok := c.OwningCategory("y")
		require.True(t, ok)
		assert.Equal(t, "B", name)

		_, ok = c.OwningCategory("nope")
		assert.False(t, ok)
	})
}

func TestCategoryItems(t *testing.T) {
	c := catalog.Default()

	items := c.CategoryItems("OS")
	require.Len(t, items, 3)
	assert.Equal(t, "macos", items[0].ID)
	assert.Equal(t, "windows", items[1].ID)
	assert.Equal(t, "linux", items[2].ID)

	assert.Empty(t, c.CategoryItems("os"), "lookup is exact")
	assert.NotNil(t, c.CategoryItems("Unknown"))
	assert.Empty(t, c.CategoryItems("Unknown"))
}

func TestCategoryItemsIsACopy(t *testing.T) {
	c := catalog.Default()
	items := c.CategoryItems("Web")
	items[0].Label = "changed"

	it, ok := c.FindItem("node")
	require.True(t, ok)
	assert.Equal(t, "Node.js", it.Label)
}

func TestSearchFilter(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive", "PY", []string{"python"}},
		{"trimmed", "  rust ", []string{"rust"}},
		{"across categories in catalog order", "react", []string{"react", "reactnative"}},
		{"substring", "sql", []string{"mysql", "postgresql"}},
		{"no match", "cobol", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, it := range c.SearchFilter(tt.query) {
				got = append(got, it.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(`
categories:
  - name: Web
    items:
      - id: node
        label: Node.js
        icon: file-code-2:emerald-500
        content: |-
          node_modules/
          .env
`))
	require.NoError(t, err)

	it, ok := c.FindItem("node")
	require.True(t, ok)
	assert.Equal(t, "node_modules/\n.env", it.Content)
	assert.Equal(t, "file-code-2:emerald-500", it.Icon)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := catalog.Parse([]byte("categories:\n  - name: Web\n    itemz: []\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := catalog.New([]catalog.Category{
		{Name: "A", Items: []catalog.Item{{ID: "x", Label: "X"}, {ID: "", Label: "NoID"}}},
		{Name: "A", Items: []catalog.Item{{ID: "x", Label: ""}, {ID: "bad", Label: "Bad", Content: "[abc"}}},
	})

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate category "A"`)
	assert.Contains(t, msg, `duplicate id "x"`)
	assert.Contains(t, msg, "empty id")
	assert.Contains(t, msg, `item "x" has an empty label`)
	assert.Contains(t, msg, `item "bad"`)
}
