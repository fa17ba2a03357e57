package port

import (
	"context"

	"github.com/nikolayk812/cartkeeper/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context) (domain.Snapshot, error)
	AddItem(ctx context.Context, item domain.Item) error
	RemoveItem(ctx context.Context, item domain.Item) (bool, error)
}
