package services

import (
	"context"
	"log"

	"maison-decor/models"
	"maison-decor/repositories"
)

// The reducer functions below are pure state transitions: no storage, no
// side effects. CartService wires them to the repository with a
// load-reduce-save cycle per request, so the stored snapshot is always read
// before the first mutation of a session is applied.

// RecomputeTotals rebuilds both aggregates from scratch over the remaining
// items.
func RecomputeTotals(state *models.CartState) {
	totalItems := 0
	totalValue := 0.0
	for _, item := range state.Items {
		totalItems += item.Quantity
		totalValue += item.Price * float64(item.Quantity)
	}
	state.TotalItems = totalItems
	state.TotalValue = totalValue
}

// AddCartItem merges by product id: an existing entry gains quantity 1, a
// new entry starts at quantity 1. At most one entry per id ever exists.
func AddCartItem(state *models.CartState, item models.CartItem) {
	for i := range state.Items {
		if state.Items[i].ID == item.ID {
			state.Items[i].Quantity++
			RecomputeTotals(state)
			return
		}
	}
	item.Quantity = 1
	state.Items = append(state.Items, item)
	RecomputeTotals(state)
}

// RemoveCartItem deletes the entry with the given id; absent ids are a
// no-op.
func RemoveCartItem(state *models.CartState, id string) {
	for i := range state.Items {
		if state.Items[i].ID == id {
			state.Items = append(state.Items[:i], state.Items[i+1:]...)
			break
		}
	}
	RecomputeTotals(state)
}

// UpdateCartQuantity clamps at zero; a zero quantity removes the entry
// entirely.
func UpdateCartQuantity(state *models.CartState, id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		RemoveCartItem(state, id)
		return
	}
	for i := range state.Items {
		if state.Items[i].ID == id {
			state.Items[i].Quantity = quantity
			break
		}
	}
	RecomputeTotals(state)
}

// AddWishlistItem has set semantics: adding an id already present is a
// no-op, not an error.
func AddWishlistItem(state *models.WishlistState, item models.WishlistItem) {
	for i := range state.Items {
		if state.Items[i].ID == item.ID {
			return
		}
	}
	state.Items = append(state.Items, item)
}

func RemoveWishlistItem(state *models.WishlistState, id string) {
	for i := range state.Items {
		if state.Items[i].ID == id {
			state.Items = append(state.Items[:i], state.Items[i+1:]...)
			return
		}
	}
}

type CartService struct {
	repo *repositories.CartRepository
}

func NewCartService(repo *repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// persistCart mirrors the state to durable storage. A storage failure is
// logged and swallowed: the in-memory result of the mutation is still valid
// and returned to the caller.
func (s *CartService) persistCart(ctx context.Context, session string, state *models.CartState) {
	if err := s.repo.SaveCart(ctx, session, state); err != nil {
		log.Println("Failed to persist cart:", err)
	}
}

func (s *CartService) persistWishlist(ctx context.Context, session string, state *models.WishlistState) {
	if err := s.repo.SaveWishlist(ctx, session, state); err != nil {
		log.Println("Failed to persist wishlist:", err)
	}
}

func (s *CartService) GetCart(ctx context.Context, session string) (*models.CartState, error) {
	return s.repo.LoadCart(ctx, session)
}

func (s *CartService) AddItem(ctx context.Context, session string, item models.CartItem) (*models.CartState, error) {
	state, err := s.repo.LoadCart(ctx, session)
	if err != nil {
		return nil, err
	}
	AddCartItem(state, item)
	s.persistCart(ctx, session, state)
	return state, nil
}

func (s *CartService) RemoveItem(ctx context.Context, session, id string) (*models.CartState, error) {
	state, err := s.repo.LoadCart(ctx, session)
	if err != nil {
		return nil, err
	}
	RemoveCartItem(state, id)
	s.persistCart(ctx, session, state)
	return state, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, session, id string, quantity int) (*models.CartState, error) {
	state, err := s.repo.LoadCart(ctx, session)
	if err != nil {
		return nil, err
	}
	UpdateCartQuantity(state, id, quantity)
	s.persistCart(ctx, session, state)
	return state, nil
}

func (s *CartService) ClearCart(ctx context.Context, session string) (*models.CartState, error) {
	state := &models.CartState{Items: []models.CartItem{}}
	s.persistCart(ctx, session, state)
	return state, nil
}

func (s *CartService) GetWishlist(ctx context.Context, session string) (*models.WishlistState, error) {
	return s.repo.LoadWishlist(ctx, session)
}

func (s *CartService) AddWishlistItem(ctx context.Context, session string, item models.WishlistItem) (*models.WishlistState, error) {
	state, err := s.repo.LoadWishlist(ctx, session)
	if err != nil {
		return nil, err
	}
	AddWishlistItem(state, item)
	s.persistWishlist(ctx, session, state)
	return state, nil
}

func (s *CartService) RemoveWishlistItem(ctx context.Context, session, id string) (*models.WishlistState, error) {
	state, err := s.repo.LoadWishlist(ctx, session)
	if err != nil {
		return nil, err
	}
	RemoveWishlistItem(state, id)
	s.persistWishlist(ctx, session, state)
	return state, nil
}

func (s *CartService) ClearWishlist(ctx context.Context, session string) (*models.WishlistState, error) {
	state := &models.WishlistState{Items: []models.WishlistItem{}}
	s.persistWishlist(ctx, session, state)
	return state, nil
}
