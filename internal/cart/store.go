package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	redisclient "github.com/edutorres-dev/BellaVitta/pkg/redis"
)

type kvStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(customerID string) string
}

// Store persists cart documents in Redis keyed by customer, with a sliding
// TTL refreshed on every save.
type Store struct {
	kv  kvStore
	ttl time.Duration
}

// NewStore builds a cart store over the shared Redis client.
func NewStore(kv kvStore, ttl time.Duration) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{kv: kv, ttl: ttl}, nil
}

// Load returns the customer's cart, or an empty cart when none is stored.
func (s *Store) Load(ctx context.Context, customerID string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(customerID))
	if err != nil {
		if errors.Is(err, redisclient.ErrKeyNotFound) {
			return &Cart{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "carregando carrinho")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// corrupted document: start fresh rather than brick the session
		return &Cart{}, nil
	}
	return &cart, nil
}

// Save writes the cart back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, customerID string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serializando carrinho")
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(customerID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "salvando carrinho")
	}
	return nil
}

// Clear removes the customer's cart document entirely.
func (s *Store) Clear(ctx context.Context, customerID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(customerID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "limpando carrinho")
	}
	return nil
}
