package repository

import (
	"context"
	"sync"

	"github.com/nikolayk812/cartkeeper/internal/domain"
)

func withWriteLock[T any](ctx context.Context, mu *sync.RWMutex, cart *domain.Cart, fn func(c *domain.Cart) (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	mu.Lock()
	defer mu.Unlock()

	return fn(cart)
}

func withReadLock[T any](ctx context.Context, mu *sync.RWMutex, cart *domain.Cart, fn func(c *domain.Cart) T) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	mu.RLock()
	defer mu.RUnlock()

	return fn(cart), nil
}
