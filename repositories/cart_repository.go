package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"maison-decor/models"
)

const (
	cartKeyPrefix     = "cart:"
	wishlistKeyPrefix = "wishlist:"
	sessionTTL        = 30 * 24 * time.Hour
)

// CartRepository persists session carts and wishlists as JSON blobs in a
// key-value store. With no Redis client everything degrades to an in-memory
// map, so a missing backend never surfaces as an error to the caller.
type CartRepository struct {
	client *redis.Client

	mu    sync.RWMutex
	local map[string]string
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{
		client: client,
		local:  make(map[string]string),
	}
}

func (r *CartRepository) get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.local[key], nil
	}

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *CartRepository) put(ctx context.Context, key, val string) error {
	if r.client == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.local[key] = val
		return nil
	}
	return r.client.Set(ctx, key, val, sessionTTL).Err()
}

// LoadCart returns the stored cart for the session, or a fresh empty state
// when nothing was persisted yet.
func (r *CartRepository) LoadCart(ctx context.Context, session string) (*models.CartState, error) {
	raw, err := r.get(ctx, cartKeyPrefix+session)
	if err != nil {
		return nil, err
	}

	state := &models.CartState{Items: []models.CartItem{}}
	if raw == "" {
		return state, nil
	}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		// A corrupt blob is discarded rather than wedging the session.
		return &models.CartState{Items: []models.CartItem{}}, nil
	}
	return state, nil
}

// SaveCart overwrites the stored collection, including the empty one; a
// cleared cart is persisted explicitly rather than by deleting the key.
func (r *CartRepository) SaveCart(ctx context.Context, session string, state *models.CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.put(ctx, cartKeyPrefix+session, string(raw))
}

func (r *CartRepository) LoadWishlist(ctx context.Context, session string) (*models.WishlistState, error) {
	raw, err := r.get(ctx, wishlistKeyPrefix+session)
	if err != nil {
		return nil, err
	}

	state := &models.WishlistState{Items: []models.WishlistItem{}}
	if raw == "" {
		return state, nil
	}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return &models.WishlistState{Items: []models.WishlistItem{}}, nil
	}
	return state, nil
}

func (r *CartRepository) SaveWishlist(ctx context.Context, session string, state *models.WishlistState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.put(ctx, wishlistKeyPrefix+session, string(raw))
}
