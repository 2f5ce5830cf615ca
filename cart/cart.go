package cart

import (
	"errors"
	"strconv"
	"strings"
)

// Item is the catalog snapshot a line is created from. Prices are captured
// at add time and never re-read from the catalog.
type Item struct {
	KodeMenu     string
	Name         string
	Image        string
	Price        int64
	DiskonPersen float64
	DiskonRupiah int64
}

// Line is one cart entry. Discount holds the discounted unit price;
// TotalDiscount is the amount actually payable for the line, so
// TotalDiscount <= TotalPrice always holds.
type Line struct {
	KodeMenu      string
	Name          string
	Image         string
	Qty           int
	Price         int64 // unit price
	Discount      int64 // unit price after diskon
	TotalPrice    int64
	TotalDiscount int64
}

// Cart keeps lines in insertion order, keyed by kode_menu.
type Cart struct {
	lines []Line
}

var (
	ErrEmpty       = errors.New("cart is empty")
	ErrZeroTotal   = errors.New("cart total is zero")
	ErrOutOfRange  = errors.New("line index out of range")
	ErrNegativeQty = errors.New("quantity must not be negative")
)

func New() *Cart { return &Cart{} }

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) Lines() []Line { return c.lines }

func (c *Cart) Line(i int) (Line, error) {
	if i < 0 || i >= len(c.lines) {
		return Line{}, ErrOutOfRange
	}
	return c.lines[i], nil
}

// Add appends a line for item, or merges quantities when a line with the
// same kode_menu already exists. Totals are recomputed from the stored unit
// snapshots so they always equal qty x unit price / unit discount.
func (c *Cart) Add(item Item, qty int) error {
	if qty < 0 {
		return ErrNegativeQty
	}
	if qty == 0 {
		return nil
	}
	unit := item.Price - item.DiskonRupiah
	if unit < 0 {
		unit = 0
	}
	for i := range c.lines {
		if c.lines[i].KodeMenu == item.KodeMenu {
			c.lines[i].Qty += qty
			c.recompute(i)
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		KodeMenu:      item.KodeMenu,
		Name:          item.Name,
		Image:         item.Image,
		Qty:           qty,
		Price:         item.Price,
		Discount:      unit,
		TotalPrice:    item.Price * int64(qty),
		TotalDiscount: unit * int64(qty),
	})
	return nil
}

// Increment bumps the quantity of line i by one.
func (c *Cart) Increment(i int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrOutOfRange
	}
	c.lines[i].Qty++
	c.recompute(i)
	return nil
}

// Decrement lowers the quantity of line i by one. A line never stays at
// quantity zero: decrementing from one removes it.
func (c *Cart) Decrement(i int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrOutOfRange
	}
	c.lines[i].Qty--
	if c.lines[i].Qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.recompute(i)
	return nil
}

// SetQuantity applies a user-typed quantity to line i. Empty or non-numeric
// input counts as zero; negative input is rejected and the line is left
// unchanged. Zero removes the line.
func (c *Cart) SetQuantity(i int, raw string) error {
	if i < 0 || i >= len(c.lines) {
		return ErrOutOfRange
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		qty = 0
	}
	if qty < 0 {
		return ErrNegativeQty
	}
	if qty == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Qty = qty
	c.recompute(i)
	return nil
}

// Remove deletes the line with the given kode_menu. Lines are keyed strictly
// by code; display names are not unique.
func (c *Cart) Remove(kodeMenu string) {
	for i := range c.lines {
		if c.lines[i].KodeMenu == kodeMenu {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) recompute(i int) {
	c.lines[i].TotalPrice = c.lines[i].Price * int64(c.lines[i].Qty)
	c.lines[i].TotalDiscount = c.lines[i].Discount * int64(c.lines[i].Qty)
}
