// Package cart holds the active cart's line items and keeps them in sync
// with the persisted cart for the current scope. Two scopes exist: the guest
// cart (no user logged in) and the per-user cart. Switching scope reloads
// the lines from the repository; the previous scope's lines are left as
// they were stored.
package cart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/repository"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

// Cart is the active cart state, owned by the composition root and used
// from a single goroutine. Every mutation reads the full line sequence,
// applies one transformation and replaces the stored sequence whole.
type Cart struct {
	repo   *repository.Carts
	userID string // "" addresses the guest scope
	items  []models.CartItem
}

// New loads the guest cart.
func New(repo *repository.Carts) (*Cart, error) {
	c := &Cart{repo: repo}
	if err := c.SetUser(""); err != nil {
		return nil, err
	}
	return c, nil
}

// SetUser switches the cart scope and reloads the lines stored for it.
// Logging in replaces the guest lines with whatever was stored for the
// user — the guest cart is not merged, it stays under its own key.
func (c *Cart) SetUser(userID string) error {
	items, err := c.repo.Get(userID)
	if err != nil {
		return err
	}
	c.userID = userID
	c.items = items
	return nil
}

// UserID returns the current scope; "" means guest.
func (c *Cart) UserID() string {
	return c.userID
}

// Items returns a copy of the active line sequence.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems sums line quantities, recomputed on every call.
func (c *Cart) TotalItems() int {
	n, _ := models.CartTotals(c.items)
	return n
}

// TotalPrice sums price times quantity over the lines, recomputed on every
// call.
func (c *Cart) TotalPrice() float64 {
	_, total := models.CartTotals(c.items)
	return total
}

// Add appends a new line for the chosen product configuration with
// quantity 1. Name, price and image are snapshotted from the product as it
// is now; later catalog changes do not touch the line.
func (c *Cart) Add(p models.Product, size, color, notes string) (models.CartItem, error) {
	item := models.CartItem{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Size:        size,
		Color:       color,
		Notes:       notes,
		Image:       p.Image,
		Quantity:    1,
	}
	next := append(c.Items(), item)
	if err := c.save(next); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Remove drops the line with the given id.
func (c *Cart) Remove(lineID string) error {
	next := make([]models.CartItem, 0, len(c.items))
	found := false
	for _, it := range c.items {
		if it.ID == lineID {
			found = true
			continue
		}
		next = append(next, it)
	}
	if !found {
		return fmt.Errorf("%w: cart line %q", store.ErrNotFound, lineID)
	}
	return c.save(next)
}

// SetQuantity updates the quantity of the line with the given id. A
// quantity of zero or less removes the line.
func (c *Cart) SetQuantity(lineID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(lineID)
	}
	next := c.Items()
	found := false
	for i := range next {
		if next[i].ID == lineID {
			next[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: cart line %q", store.ErrNotFound, lineID)
	}
	return c.save(next)
}

// Clear empties the cart in the active scope.
func (c *Cart) Clear() error {
	if err := c.repo.Clear(c.userID); err != nil {
		return err
	}
	c.items = []models.CartItem{}
	return nil
}

// save persists the replacement sequence, then adopts it. A failed write
// leaves both the stored and the in-memory lines untouched.
func (c *Cart) save(next []models.CartItem) error {
	if err := c.repo.Replace(c.userID, next); err != nil {
		return err
	}
	c.items = next
	return nil
}
