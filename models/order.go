package models

import "github.com/shopspring/decimal"

// OrderLine is one distinct item in an order with its accumulated quantity.
type OrderLine struct {
	Item     MenuItem
	Quantity int
}

func (l OrderLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
