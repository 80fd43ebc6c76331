package carts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carts live in redis keyed by the visitor's cart token:
// cart:{token} -> JSON Cart, refreshed to a 24h TTL on every save.
const keyCart = "cart:%s"

var TTLCart = 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get returns the cart for a token, or an empty cart when none exists.
func (s *Store) Get(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyCart, token)).Result()
	if errors.Is(err, redis.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *Store) Save(ctx context.Context, token string, cart *Cart) error {
	b, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf(keyCart, token), b, TTLCart).Err()
}

func (s *Store) Clear(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(keyCart, token)).Err()
}
