package services

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"sxc-kitchen/config"
)

// Bill column widths.
const (
	NameWidth  = 30
	QtyWidth   = 10
	PriceWidth = 15
	TotalWidth = 15

	tableWidth = NameWidth + QtyWidth + PriceWidth + TotalWidth
)

// WriteBanner writes a *-bordered block with every line right-aligned to width.
func WriteBanner(w io.Writer, width int, lines ...string) {
	fmt.Fprintln(w, strings.Repeat("*", width))
	for _, l := range lines {
		fmt.Fprintf(w, "%*s\n", width, l)
	}
	fmt.Fprintln(w, strings.Repeat("*", width))
}

// BuildBill returns the itemized bill for order.
func BuildBill(r config.RestaurantConfig, o *Order) string {
	lines, total := o.Finalize()

	headerWidth := NameWidth
	if n := utf8.RuneCountInString(r.Name); n > headerWidth {
		headerWidth = n
	}
	headerWidth += QtyWidth + PriceWidth + TotalWidth
	rule := strings.Repeat("-", tableWidth)

	var b strings.Builder
	fmt.Fprintln(&b)
	WriteBanner(&b, headerWidth, r.Name, r.Address)

	fmt.Fprintln(&b, "\nItemized Bill")
	fmt.Fprintln(&b, rule)
	row(&b, "Item Name", "Quantity",
		fmt.Sprintf("Unit Price(%s)", r.Currency),
		fmt.Sprintf("Total Price(%s)", r.Currency))
	fmt.Fprintln(&b, rule)

	for _, l := range lines {
		row(&b, l.Item.Name, fmt.Sprint(l.Quantity),
			l.Item.Price.StringFixed(2),
			l.Total().StringFixed(2))
	}

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%*s%s\n", NameWidth+QtyWidth+PriceWidth, "Overall Total: "+r.Currency, total.StringFixed(2))
	fmt.Fprintln(&b)

	WriteBanner(&b, headerWidth, "Thank you for dining with us!", "We look forward to serving you again.")
	return b.String()
}

// RenderBill writes the bill to w.
func RenderBill(w io.Writer, r config.RestaurantConfig, o *Order) error {
	if _, err := io.WriteString(w, BuildBill(r, o)); err != nil {
		return fmt.Errorf("write bill: %w", err)
	}
	return nil
}

func row(b *strings.Builder, name, qty, price, total string) {
	line := fmt.Sprintf("%-*s%-*s%-*s%-*s", NameWidth, name, QtyWidth, qty, PriceWidth, price, TotalWidth, total)
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
