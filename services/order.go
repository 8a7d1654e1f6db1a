package services

import (
	"errors"
	"fmt"

	"sxc-kitchen/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line, merged selections included.
const MaxQuantity = 999

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge = fmt.Errorf("quantity must be at most %d", MaxQuantity)
)

// Order accumulates the customer's selections. Lines keep the order in which
// items were first added; repeated items bump the existing line.
type Order struct {
	ID    uuid.UUID
	lines []models.OrderLine
	index map[string]int // item name -> position in lines
	total decimal.Decimal
}

func NewOrder() *Order {
	return &Order{
		ID:    uuid.New(),
		index: make(map[string]int),
		total: decimal.Zero,
	}
}

// AddItem merges quantity into the line for item.Name and updates the total.
func (o *Order) AddItem(item models.MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	if i, ok := o.index[item.Name]; ok {
		if o.lines[i].Quantity > MaxQuantity-quantity {
			return ErrQuantityTooLarge
		}
		o.lines[i].Quantity += quantity
	} else {
		o.index[item.Name] = len(o.lines)
		o.lines = append(o.lines, models.OrderLine{Item: item, Quantity: quantity})
	}
	o.total = o.total.Add(item.Price.Mul(decimal.NewFromInt(int64(quantity))))
	return nil
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []models.OrderLine {
	out := make([]models.OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Len() int {
	return len(o.lines)
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Finalize is the read-only view handed to the bill.
func (o *Order) Finalize() ([]models.OrderLine, decimal.Decimal) {
	return o.Lines(), o.total
}
