package repository

import (
	"encoding/json"
	"fmt"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

// Carts persists one cart per user id under the ct_carts map, plus a single
// guest cart under its own key. The empty user id addresses the guest cart.
//
// Replace is the only mutation primitive: add/remove/update at the state
// layer read the full line sequence, transform it, and write it back whole.
type Carts struct {
	kv store.KeyValue
}

func NewCarts(kv store.KeyValue) *Carts {
	return &Carts{kv: kv}
}

// Get returns the cart lines for userID. An unseeded or cleared cart is an
// empty sequence, never an error.
func (r *Carts) Get(userID string) ([]models.CartItem, error) {
	if userID == "" {
		return r.readGuest()
	}
	carts, err := r.readAll()
	if err != nil {
		return nil, err
	}
	items, ok := carts[userID]
	if !ok || items == nil {
		return []models.CartItem{}, nil
	}
	return items, nil
}

// Replace overwrites the cart for userID with items.
func (r *Carts) Replace(userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	if userID == "" {
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to encode guest cart: %w", err)
		}
		return r.kv.Set(guestCartKey, string(data))
	}
	carts, err := r.readAll()
	if err != nil {
		return err
	}
	carts[userID] = items
	return r.writeAll(carts)
}

// Clear empties the cart for userID. The guest cart key is removed outright.
func (r *Carts) Clear(userID string) error {
	if userID == "" {
		return r.kv.Delete(guestCartKey)
	}
	return r.Replace(userID, []models.CartItem{})
}

func (r *Carts) readGuest() ([]models.CartItem, error) {
	raw, ok, err := r.kv.Get(guestCartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode guest cart: %w", err)
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func (r *Carts) readAll() (map[string][]models.CartItem, error) {
	raw, ok, err := r.kv.Get(cartsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string][]models.CartItem{}, nil
	}
	var carts map[string][]models.CartItem
	if err := json.Unmarshal([]byte(raw), &carts); err != nil {
		return nil, fmt.Errorf("failed to decode carts: %w", err)
	}
	if carts == nil {
		carts = map[string][]models.CartItem{}
	}
	return carts, nil
}

func (r *Carts) writeAll(carts map[string][]models.CartItem) error {
	data, err := json.Marshal(carts)
	if err != nil {
		return fmt.Errorf("failed to encode carts: %w", err)
	}
	return r.kv.Set(cartsKey, string(data))
}
