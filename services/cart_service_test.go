package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison-decor/models"
	"maison-decor/repositories"
)

func lamp() models.CartItem {
	return models.CartItem{ID: "p1", Name: "Brass Lamp", Price: 100, Image: "/img/lamp.jpg", Category: "Lighting"}
}

func TestAddCartItemMergesByID(t *testing.T) {
	state := &models.CartState{Items: []models.CartItem{}}

	AddCartItem(state, lamp())
	AddCartItem(state, lamp())

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 200.0, state.TotalValue)
}

func TestUpdateCartQuantityZeroRemovesItem(t *testing.T) {
	state := &models.CartState{Items: []models.CartItem{}}
	AddCartItem(state, lamp())

	UpdateCartQuantity(state, "p1", 0)

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.Equal(t, 0.0, state.TotalValue)
}

func TestUpdateCartQuantityClampsNegative(t *testing.T) {
	state := &models.CartState{Items: []models.CartItem{}}
	AddCartItem(state, lamp())

	UpdateCartQuantity(state, "p1", -5)

	assert.Empty(t, state.Items)
}

func TestRemoveCartItemAbsentIsNoOp(t *testing.T) {
	state := &models.CartState{Items: []models.CartItem{}}
	AddCartItem(state, lamp())

	RemoveCartItem(state, "nope")

	assert.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.TotalItems)
}

func TestAggregatesMatchScratchRecompute(t *testing.T) {
	state := &models.CartState{Items: []models.CartItem{}}

	AddCartItem(state, lamp())
	AddCartItem(state, models.CartItem{ID: "p2", Name: "Oak Shelf", Price: 45.5})
	AddCartItem(state, lamp())
	UpdateCartQuantity(state, "p2", 3)
	AddCartItem(state, models.CartItem{ID: "p3", Name: "Linen Throw", Price: 29.99})
	RemoveCartItem(state, "p1")

	wantItems := 0
	wantValue := 0.0
	for _, item := range state.Items {
		wantItems += item.Quantity
		wantValue += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, wantItems, state.TotalItems)
	assert.InDelta(t, wantValue, state.TotalValue, 1e-9)
}

func TestAddWishlistItemIsIdempotent(t *testing.T) {
	state := &models.WishlistState{Items: []models.WishlistItem{}}
	entry := models.WishlistItem{ID: "p1", Name: "Brass Lamp", Price: 100}

	AddWishlistItem(state, entry)
	AddWishlistItem(state, entry)

	assert.Len(t, state.Items, 1)
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewCartRepository(nil)
	svc := NewCartService(repo)

	_, err := svc.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", models.CartItem{ID: "p2", Name: "Oak Shelf", Price: 45.5})
	require.NoError(t, err)
	before, err := svc.UpdateQuantity(ctx, "sess-1", "p1", 4)
	require.NoError(t, err)

	// A fresh service over the same storage must see the identical state.
	reloaded, err := NewCartService(repo).GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, before, reloaded)
	assert.Equal(t, 5, reloaded.TotalItems)
	assert.InDelta(t, 4*100+45.5, reloaded.TotalValue, 1e-9)
}

func TestClearCartPersistsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewCartRepository(nil)
	svc := NewCartService(repo)

	_, err := svc.AddItem(ctx, "sess-1", lamp())
	require.NoError(t, err)

	cleared, err := svc.ClearCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)

	reloaded, err := svc.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)
	assert.Equal(t, 0, reloaded.TotalItems)
	assert.Equal(t, 0.0, reloaded.TotalValue)
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(repositories.NewCartRepository(nil))

	_, err := svc.AddItem(ctx, "sess-a", lamp())
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "sess-b")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
