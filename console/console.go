// Package console runs the menu prompts that build up an order.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sxc-kitchen/config"
	"sxc-kitchen/lang"
	"sxc-kitchen/models"
	"sxc-kitchen/services"
)

type Catalog interface {
	ListMenuByCategory(category models.Category) []models.MenuItem
	MenuItemByChoice(category models.Category, choice int) (models.MenuItem, bool)
}

// Session is one customer at the terminal. It owns the input stream for
// its whole lifetime and feeds every valid selection into order.
type Session struct {
	in         *bufio.Reader
	out        io.Writer
	restaurant config.RestaurantConfig
	catalog    Catalog
	order      *services.Order
	log        *slog.Logger

	closed bool // input hit EOF; remaining prompts are skipped
}

func New(in io.Reader, out io.Writer, restaurant config.RestaurantConfig, catalog Catalog, order *services.Order, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	if restaurant.MenuWidth <= 0 {
		restaurant.MenuWidth = config.DefaultMenuWidth
	}
	return &Session{
		in:         bufio.NewReader(in),
		out:        out,
		restaurant: restaurant,
		catalog:    catalog,
		order:      order,
		log:        log,
	}
}

// Run asks for main courses, then desserts, then beverages.
func (s *Session) Run(ctx context.Context) error {
	for _, c := range models.Categories() {
		if err := s.TakeOrder(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// TakeOrder loops over one category's menu until the customer enters 0.
// Malformed input is reported and the menu shown again; it never touches the order.
func (s *Session) TakeOrder(ctx context.Context, category models.Category) error {
	for {
		if s.closed || ctx.Err() != nil {
			return nil
		}

		s.sendMenu(category)
		choice, ok, err := s.readInt()
		if err != nil {
			return s.stop(category, err)
		}
		if !ok {
			s.send(lang.T("invalid_input"))
			continue
		}
		if choice == 0 {
			s.send(lang.T("category_done", category.Plural()))
			return nil
		}

		item, found := s.catalog.MenuItemByChoice(category, choice)
		if !found {
			s.log.Debug("choice out of range", "category", category.String(), "choice", choice)
			s.send(lang.T("invalid_choice"))
			continue
		}

		fmt.Fprint(s.out, lang.T("enter_quantity"))
		qty, ok, err := s.readInt()
		if err != nil {
			return s.stop(category, err)
		}
		if !ok {
			s.send(lang.T("invalid_input"))
			continue
		}

		if err := s.order.AddItem(item, qty); err != nil {
			if errors.Is(err, services.ErrInvalidQuantity) {
				s.log.Debug("quantity rejected", "item", item.Name, "qty", qty)
				s.send(lang.T("invalid_quantity"))
				continue
			}
			if errors.Is(err, services.ErrQuantityTooLarge) {
				s.log.Debug("quantity rejected", "item", item.Name, "qty", qty)
				s.send(lang.T("quantity_too_large", services.MaxQuantity))
				continue
			}
			return err
		}
		s.log.Debug("item added", "order_id", s.order.ID.String(), "item", item.Name, "qty", qty,
			"order_total", s.order.Total().StringFixed(2))
		s.send(lang.T("item_added", item.Name))
	}
}

func (s *Session) sendMenu(category models.Category) {
	width := s.restaurant.MenuWidth

	fmt.Fprintln(s.out)
	services.WriteBanner(s.out, width, s.restaurant.Name, s.restaurant.Address)
	fmt.Fprintln(s.out)
	s.send(lang.T("menu_title", category.String()))
	s.send(strings.Repeat("-", width))
	for i, it := range s.catalog.ListMenuByCategory(category) {
		s.send(lang.T("menu_item", i+1, it.Name, s.restaurant.Currency, it.Price.StringFixed(2)))
	}
	s.send(lang.T("menu_done", category.Plural()))
	fmt.Fprint(s.out, lang.T("enter_choice"))
}

func (s *Session) send(text string) {
	fmt.Fprintln(s.out, text)
}

// readInt reads one line and parses it as a single signed integer.
// ok is false for anything else, including an empty line.
func (s *Session) readInt() (n int, ok bool, err error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, false, err
	}

	text := strings.TrimSpace(line)
	n, convErr := strconv.Atoi(text)
	if convErr != nil {
		s.log.Debug("malformed input", "input", text)
		return 0, false, nil
	}
	return n, true, nil
}

// stop ends the session on EOF; any other read failure is returned.
func (s *Session) stop(category models.Category, err error) error {
	if errors.Is(err, io.EOF) {
		s.closed = true
		s.log.Debug("input closed", "category", category.String())
		fmt.Fprintln(s.out)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
