package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/cartkeeper/internal/domain"
	"github.com/nikolayk812/cartkeeper/internal/port"
)

// cartRepository guards one shared cart; every mutation runs under the write lock
// so the total always matches the items seen by readers. Mutations that would
// push the total out of float64 range are refused with domain.ErrTotalOverflow.
type cartRepository struct {
	mu   sync.RWMutex
	cart *domain.Cart
}

func NewCart(cart *domain.Cart) port.CartRepository {
	if cart == nil {
		cart = domain.NewCart()
	}

	return &cartRepository{cart: cart}
}

func (r *cartRepository) GetCart(ctx context.Context) (domain.Snapshot, error) {
	snap, err := withReadLock(ctx, &r.mu, r.cart, (*domain.Cart).Snapshot)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("withReadLock: %w", err)
	}

	return snap, nil
}

func (r *cartRepository) AddItem(ctx context.Context, item domain.Item) error {
	_, err := withWriteLock(ctx, &r.mu, r.cart, func(c *domain.Cart) (struct{}, error) {
		if !domain.IsFinite(item.Price()) || !domain.IsFinite(c.Total()+item.Price()) {
			return struct{}{}, fmt.Errorf("%s: %w", item, domain.ErrTotalOverflow)
		}

		c.AddItem(item)
		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withWriteLock: %w", err)
	}

	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, item domain.Item) (bool, error) {
	removed, err := withWriteLock(ctx, &r.mu, r.cart, func(c *domain.Cart) (bool, error) {
		if !domain.IsFinite(totalWithout(c.Items(), item)) {
			return false, fmt.Errorf("%s: %w", item, domain.ErrTotalOverflow)
		}

		return c.RemoveItem(item), nil
	})
	if err != nil {
		return false, fmt.Errorf("withWriteLock: %w", err)
	}

	return removed, nil
}

// totalWithout sums items as the cart would after dropping the first match of item.
func totalWithout(items []domain.Item, item domain.Item) float64 {
	if idx := slices.IndexFunc(items, item.Equal); idx >= 0 {
		items = slices.Delete(items, idx, idx+1)
	}

	var total float64
	for _, it := range items {
		total += it.Price()
	}
	return total
}
