package services

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"sxc-kitchen/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// The menus are compiled into the binary; there is no way to edit them at run time.
//
//go:embed menus/*.yaml
var menusFS embed.FS

type menuFile struct {
	Category string         `yaml:"category"`
	Items    []menuFileItem `yaml:"items"`
}

type menuFileItem struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Catalog is the fixed list of purchasable items per category.
type Catalog struct {
	items map[models.Category][]models.MenuItem
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog built from the embedded menu files.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(menusFS)
		if err != nil {
			panic(fmt.Sprintf("embedded menus: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadCatalog reads every menus/*.yaml file of fsys in name order.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "menus/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	sort.Strings(names)

	c := &Catalog{items: make(map[models.Category][]models.MenuItem)}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read menu %s: %w", name, err)
		}
		if err := c.addMenu(data); err != nil {
			return nil, fmt.Errorf("menu %s: %w", name, err)
		}
	}
	return c, nil
}

func (c *Catalog) addMenu(data []byte) error {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	category, err := models.ParseCategory(f.Category)
	if err != nil {
		return err
	}
	if _, ok := c.items[category]; ok {
		return fmt.Errorf("category %s declared twice", f.Category)
	}

	seen := make(map[string]bool, len(f.Items))
	items := make([]models.MenuItem, 0, len(f.Items))
	for i, it := range f.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return fmt.Errorf("item %d: name is required", i+1)
		}
		if seen[name] {
			return fmt.Errorf("item %d: duplicate name %q", i+1, name)
		}
		seen[name] = true

		price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
		if err != nil {
			return fmt.Errorf("item %q: invalid price %q: %w", name, it.Price, err)
		}
		if price.IsNegative() {
			return fmt.Errorf("item %q: price must be >= 0", name)
		}
		items = append(items, models.MenuItem{Name: name, Price: price, Category: category})
	}
	c.items[category] = items
	return nil
}

// ListMenuByCategory returns the items of a category in menu order;
// index i is shown to the customer as number i+1.
func (c *Catalog) ListMenuByCategory(category models.Category) []models.MenuItem {
	items := c.items[category]
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}

// MenuItemByChoice resolves a 1-based menu number.
func (c *Catalog) MenuItemByChoice(category models.Category, choice int) (models.MenuItem, bool) {
	items := c.items[category]
	if choice < 1 || choice > len(items) {
		return models.MenuItem{}, false
	}
	return items[choice-1], true
}
