package cart

import (
	"agriconnect-be/internal/product"
)

// Line is one (item, quantity) pairing held in a session cart. The product
// snapshot travels with the line so later catalog edits do not rewrite an
// already-carted price.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the session-scoped aggregate. At most one line per product id,
// every quantity >= 1. Lines keep insertion order. Cart is not safe for
// concurrent use; the Store serializes access per session.
type Cart struct {
	lines []Line
}

// AddItem increments the quantity of an existing line for p, or appends a
// new line with quantity 1. It never fails.
func (c *Cart) AddItem(p product.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// RemoveItem deletes the line for id. Absent id is a silent no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity. q <= 0 removes the line. An absent
// id creates no new line.
func (c *Cart) SetQuantity(id string, q int) {
	if q <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines[i].Quantity = q
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalPrice sums price x quantity over all lines. 0 for an empty cart.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// TotalItemCount sums quantities across all lines.
func (c *Cart) TotalItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart's lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
