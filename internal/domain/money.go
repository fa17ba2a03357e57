package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPriceExponent bounds the decimal exponent accepted from input; float64
// cannot hold anything beyond roughly 1e308 anyway.
const maxPriceExponent = 400

var (
	ErrInvalidPrice  = errors.New("invalid price")
	ErrTotalOverflow = errors.New("cart total overflows")
)

// ParsePrice parses a decimal string such as "12.50" into a finite float price.
func ParsePrice(s string) (float64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("price[%s]: %w: %w", s, ErrInvalidPrice, err)
	}

	if exp := amount.Exponent(); exp > maxPriceExponent || exp < -maxPriceExponent {
		return 0, fmt.Errorf("price[%s]: %w: exponent %d out of range", s, ErrInvalidPrice, exp)
	}

	price, _ := amount.Float64()
	if !IsFinite(price) {
		return 0, fmt.Errorf("price[%s]: %w: not representable", s, ErrInvalidPrice)
	}

	return price, nil
}

// FormatPrice renders a price with two fixed decimals for display.
// Non-finite values are rendered as-is ("+Inf", "NaN").
func FormatPrice(price float64) string {
	if !IsFinite(price) {
		return strconv.FormatFloat(price, 'f', -1, 64)
	}

	return decimal.NewFromFloat(price).StringFixed(2)
}

func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
