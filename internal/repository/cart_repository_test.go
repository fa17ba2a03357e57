package repository_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/cartkeeper/internal/domain"
	"github.com/nikolayk812/cartkeeper/internal/port"
	"github.com/nikolayk812/cartkeeper/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type cartRepositorySuite struct {
	suite.Suite

	cart *domain.Cart
	repo port.CartRepository
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before each test a fresh shared cart is injected
func (suite *cartRepositorySuite) SetupTest() {
	suite.cart = domain.NewCart()
	suite.repo = repository.NewCart(suite.cart)
}

// table cases must not see each other's items
func (suite *cartRepositorySuite) SetupSubTest() {
	suite.SetupTest()
}

func (suite *cartRepositorySuite) TestAddItem() {
	tests := []struct {
		name  string
		items []domain.Item
	}{
		{
			name:  "add one item: ok",
			items: []domain.Item{randomItem()},
		},
		{
			name:  "add duplicates: ok",
			items: []domain.Item{domain.NewItem("X", 1), domain.NewItem("X", 1)},
		},
		{
			name:  "add item with zero price: ok",
			items: []domain.Item{domain.NewItem(gofakeit.ProductName(), 0)},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, item := range tt.items {
				require.NoError(t, suite.repo.AddItem(ctx, item))
			}

			snap, err := suite.repo.GetCart(ctx)
			require.NoError(t, err)

			assert.Empty(t, cmp.Diff(tt.items, snap.Items))
			assert.Equal(t, suite.cart.ID(), snap.ID)
		})
	}
}

func (suite *cartRepositorySuite) TestRemoveItem() {
	tests := []struct {
		name        string
		setupItems  []domain.Item
		remove      domain.Item
		wantRemoved bool
		wantLen     int
	}{
		{
			name:        "remove existing item: ok",
			setupItems:  []domain.Item{domain.NewItem("Book", 12.5)},
			remove:      domain.NewItem("Book", 12.5),
			wantRemoved: true,
			wantLen:     0,
		},
		{
			name:        "remove non-existing item: no-op",
			setupItems:  []domain.Item{domain.NewItem("Book", 12.5)},
			remove:      domain.NewItem("Pen", 1),
			wantRemoved: false,
			wantLen:     1,
		},
		{
			name:        "remove from empty cart: no-op",
			remove:      domain.NewItem("Pen", 1),
			wantRemoved: false,
			wantLen:     0,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, item := range tt.setupItems {
				require.NoError(t, suite.repo.AddItem(ctx, item))
			}

			removed, err := suite.repo.RemoveItem(ctx, tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)

			snap, err := suite.repo.GetCart(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Items, tt.wantLen)
		})
	}
}

func (suite *cartRepositorySuite) TestCanceledContext() {
	t := suite.T()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := suite.repo.AddItem(ctx, randomItem())
	require.ErrorIs(t, err, context.Canceled)

	_, err = suite.repo.RemoveItem(ctx, randomItem())
	require.ErrorIs(t, err, context.Canceled)

	_, err = suite.repo.GetCart(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 0, suite.cart.Len())
}

func (suite *cartRepositorySuite) TestConcurrentMutations() {
	t := suite.T()
	ctx := t.Context()

	const workers = 100
	item := domain.NewItem("Coin", 0.25)

	var wg sync.WaitGroup
	errs := make(chan error, 2*workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- suite.repo.AddItem(ctx, item)
			_, err := suite.repo.GetCart(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	requireNoErrors(t, errs)

	snap, err := suite.repo.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Items, workers)
	assert.InDelta(t, workers*0.25, snap.Total, 1e-9)

	for range workers / 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			removed, err := suite.repo.RemoveItem(ctx, item)
			if err == nil && !removed {
				err = errors.New("expected item to be removed")
			}
			errs <- err
		}()
	}
	wg.Wait()
	requireNoErrors(t, errs)

	snap, err = suite.repo.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Items, workers/2)
	assert.InDelta(t, float64(workers/2)*0.25, snap.Total, 1e-9)
}

func (suite *cartRepositorySuite) TestTotalOverflow() {
	tests := []struct {
		name       string
		setupItems []domain.Item
		add        *domain.Item
		remove     *domain.Item
		wantLen    int
	}{
		{
			name:       "add pushing total to +Inf: refused",
			setupItems: []domain.Item{domain.NewItem("Big", 1e308)},
			add:        ptr(domain.NewItem("Big", 1e308)),
			wantLen:    1,
		},
		{
			name:       "add pushing total to -Inf: refused",
			setupItems: []domain.Item{domain.NewItem("Debt", -1e308)},
			add:        ptr(domain.NewItem("Debt", -1e308)),
			wantLen:    1,
		},
		{
			name:    "add infinite price: refused",
			add:     ptr(domain.NewItem("Inf", math.Inf(1))),
			wantLen: 0,
		},
		{
			name: "remove leaving an infinite total: refused",
			setupItems: []domain.Item{
				domain.NewItem("Big", 1e308),
				domain.NewItem("Debt", -1e308),
				domain.NewItem("Big", 1e308),
			},
			remove:  ptr(domain.NewItem("Debt", -1e308)),
			wantLen: 3,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, item := range tt.setupItems {
				require.NoError(t, suite.repo.AddItem(ctx, item))
			}

			if tt.add != nil {
				require.ErrorIs(t, suite.repo.AddItem(ctx, *tt.add), domain.ErrTotalOverflow)
			}
			if tt.remove != nil {
				removed, err := suite.repo.RemoveItem(ctx, *tt.remove)
				require.ErrorIs(t, err, domain.ErrTotalOverflow)
				assert.False(t, removed)
			}

			snap, err := suite.repo.GetCart(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Items, tt.wantLen)
			assert.True(t, domain.IsFinite(snap.Total))
		})
	}
}

func TestNewCart_NilCart(t *testing.T) {
	repo := repository.NewCart(nil)

	snap, err := repo.GetCart(t.Context())
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
}

func requireNoErrors(t *testing.T, errs chan error) {
	t.Helper()

	for {
		select {
		case err := <-errs:
			require.NoError(t, err)
		default:
			return
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func randomItem() domain.Item {
	return domain.NewItem(gofakeit.ProductName(), gofakeit.Price(1, 100))
}
