package services

import (
	"testing"
	"testing/fstest"

	"sxc-kitchen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		category models.Category
		names    []string
		prices   []string
	}{
		{models.CategoryMainCourse, []string{"Pizza", "Momo", "Burger"}, []string{"350.00", "120.00", "200.00"}},
		{models.CategoryDessert, []string{"Chocolate Cake", "Tiramisu", "Creme Brulee"}, []string{"150.00", "200.00", "250.00"}},
		{models.CategoryBeverage, []string{"Coffee", "Coke", "Virgin Mojito"}, []string{"50.00", "40.00", "100.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			items := c.ListMenuByCategory(tt.category)
			require.Len(t, items, len(tt.names))
			for i, it := range items {
				assert.Equal(t, tt.names[i], it.Name)
				assert.Equal(t, tt.prices[i], it.Price.StringFixed(2))
				assert.Equal(t, tt.category, it.Category)
			}
		})
	}
}

func TestListMenuByCategoryReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	items := c.ListMenuByCategory(models.CategoryMainCourse)
	items[0].Name = "Changed"

	again := c.ListMenuByCategory(models.CategoryMainCourse)
	assert.Equal(t, "Pizza", again[0].Name)
}

func TestMenuItemByChoice(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		choice int
		want   string
		ok     bool
	}{
		{1, "Coffee", true},
		{2, "Coke", true},
		{3, "Virgin Mojito", true},
		{0, "", false},
		{4, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := c.MenuItemByChoice(models.CategoryBeverage, tt.choice)
		if ok != tt.ok || got.Name != tt.want {
			t.Errorf("MenuItemByChoice(%d) = (%q, %v), want (%q, %v)", tt.choice, got.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown category", "category: drink\nitems:\n  - name: Tea\n    price: \"10\"\n"},
		{"empty name", "category: dessert\nitems:\n  - name: \"  \"\n    price: \"10\"\n"},
		{"bad price", "category: dessert\nitems:\n  - name: Pie\n    price: \"ten\"\n"},
		{"negative price", "category: dessert\nitems:\n  - name: Pie\n    price: \"-1.00\"\n"},
		{"duplicate item", "category: dessert\nitems:\n  - name: Pie\n    price: \"1\"\n  - name: Pie\n    price: \"2\"\n"},
		{"malformed yaml", "category: [dessert\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"menus/01.yaml": {Data: []byte(tt.body)}}
			_, err := LoadCatalog(fsys)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogDuplicateCategory(t *testing.T) {
	body := []byte("category: beverage\nitems:\n  - name: Tea\n    price: \"10\"\n")
	fsys := fstest.MapFS{
		"menus/01.yaml": {Data: body},
		"menus/02.yaml": {Data: body},
	}
	_, err := LoadCatalog(fsys)
	assert.ErrorContains(t, err, "declared twice")
}

func TestLoadCatalogMissingCategoryIsEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"menus/01.yaml": {Data: []byte("category: beverage\nitems:\n  - name: Tea\n    price: \"10.5\"\n")},
	}
	c, err := LoadCatalog(fsys)
	require.NoError(t, err)
	assert.Empty(t, c.ListMenuByCategory(models.CategoryDessert))

	tea, ok := c.MenuItemByChoice(models.CategoryBeverage, 1)
	require.True(t, ok)
	assert.Equal(t, "10.50", tea.Price.StringFixed(2))
}
