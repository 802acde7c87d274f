// ABOUTME: Shopping cart ledger with one entry per item name and quantity merging
// ABOUTME: Also extracts a purchase quantity from raw user text (first bare integer wins)

package cart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange is returned by Edit for positions outside 1..Len().
var ErrIndexOutOfRange = errors.New("cart index out of range")

// Entry is one line of the cart.
type Entry struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal returns UnitPrice * Quantity.
func (e Entry) Subtotal() float64 {
	return e.UnitPrice * float64(e.Quantity)
}

// String renders the entry as shown to the user: "whole milk £1.00 (Quantity: 3)".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s (Quantity: %d)", e.Name, FormatPrice(e.UnitPrice), e.Quantity)
}

// Cart holds at most one Entry per distinct item name, in insertion order.
type Cart struct {
	entries []Entry
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of name into the cart. An existing entry with the
// same name accumulates the quantity; its unit price is kept.
func (c *Cart) Add(name string, unitPrice float64, quantity int) {
	for i := range c.entries {
		if c.entries[i].Name == name {
			c.entries[i].Quantity += quantity
			return
		}
	}
	c.entries = append(c.entries, Entry{Name: name, UnitPrice: unitPrice, Quantity: quantity})
}

// Edit sets the quantity of the entry at 1-based index. Zero removes it.
func (c *Cart) Edit(index, quantity int) error {
	if index < 1 || index > len(c.entries) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, index, len(c.entries))
	}
	if quantity < 0 {
		return fmt.Errorf("negative quantity %d", quantity)
	}
	if quantity == 0 {
		c.entries = append(c.entries[:index-1], c.entries[index:]...)
		return nil
	}
	c.entries[index-1].Quantity = quantity
	return nil
}

// Entry returns the entry at 1-based index.
func (c *Cart) Entry(index int) (Entry, bool) {
	if index < 1 || index > len(c.entries) {
		return Entry{}, false
	}
	return c.entries[index-1], true
}

// Entries returns a copy of the cart lines.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of distinct items.
func (c *Cart) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Total returns the sum of every entry's subtotal.
func (c *Cart) Total() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Subtotal()
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
}

// FormatPrice renders an amount as "£1.50".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

// ExtractQuantity returns the first whitespace-separated token of text made
// only of ASCII digits. ok is false when no such token exists.
func ExtractQuantity(text string) (quantity int, ok bool) {
	for word := range strings.FieldsSeq(text) {
		if !isDigits(word) {
			continue
		}
		n, err := strconv.Atoi(word)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// ParseQuantity parses a typed quantity answer: a non-negative integer.
func ParseQuantity(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
