package domain

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Cart is an ordered, duplicate-friendly collection of items.
// It is not safe for concurrent use; see repository for a serialized wrapper.
type Cart struct {
	id    uuid.UUID
	items []Item
}

// Snapshot is a detached copy of a cart's state.
type Snapshot struct {
	ID    uuid.UUID
	Items []Item
	Total float64
}

func NewCart() *Cart {
	return &Cart{
		id:    uuid.New(),
		items: []Item{},
	}
}

func (c *Cart) ID() uuid.UUID { return c.id }

func (c *Cart) AddItem(item Item) {
	c.items = append(c.items, item)
}

// RemoveItem drops the first entry equal to item and reports whether one was found.
func (c *Cart) RemoveItem(item Item) bool {
	idx := slices.IndexFunc(c.items, item.Equal)
	if idx < 0 {
		return false
	}

	c.items = slices.Delete(c.items, idx, idx+1)
	return true
}

// Total is recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price()
	}
	return total
}

// Items returns a copy in insertion order.
func (c *Cart) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		ID:    c.id,
		Items: c.Items(),
		Total: c.Total(),
	}
}

func (c *Cart) String() string {
	parts := make([]string, 0, len(c.items))
	for _, item := range c.items {
		parts = append(parts, item.String())
	}

	return "Cart{id=" + c.id.String() + ", items=[" + strings.Join(parts, ", ") + "]}"
}
