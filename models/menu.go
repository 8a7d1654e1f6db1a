package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Category int

const (
	CategoryMainCourse Category = iota
	CategoryDessert
	CategoryBeverage
)

// Keys used in the embedded menu files.
const (
	KeyMainCourse = "main_course"
	KeyDessert    = "dessert"
	KeyBeverage   = "beverage"
)

// Categories returns every category in the order the customer is asked about them.
func Categories() []Category {
	return []Category{CategoryMainCourse, CategoryDessert, CategoryBeverage}
}

func (c Category) String() string {
	switch c {
	case CategoryMainCourse:
		return "Main Course"
	case CategoryDessert:
		return "Dessert"
	case CategoryBeverage:
		return "Beverage"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Plural is the label used in "Done with ..." and "Finished ordering ...".
func (c Category) Plural() string {
	switch c {
	case CategoryDessert:
		return "Desserts"
	case CategoryBeverage:
		return "Beverages"
	default:
		return c.String()
	}
}

func ParseCategory(key string) (Category, error) {
	switch key {
	case KeyMainCourse:
		return CategoryMainCourse, nil
	case KeyDessert:
		return CategoryDessert, nil
	case KeyBeverage:
		return CategoryBeverage, nil
	default:
		return 0, fmt.Errorf("invalid category: %s", key)
	}
}

type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	Category Category
}
