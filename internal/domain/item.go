package domain

import (
	"fmt"
	"strconv"
)

// Item is an immutable named, priced product.
type Item struct {
	name  string
	price float64
}

// NewItem accepts any name and price as-is, including empty names and non-positive prices.
func NewItem(name string, price float64) Item {
	return Item{name: name, price: price}
}

func (i Item) Name() string { return i.name }

func (i Item) Price() float64 { return i.price }

// Equal reports whether both name and price match.
func (i Item) Equal(other Item) bool {
	return i.name == other.name && i.price == other.price
}

func (i Item) String() string {
	return fmt.Sprintf("Item{name=%s, price=%s}", i.name, strconv.FormatFloat(i.price, 'f', -1, 64))
}
