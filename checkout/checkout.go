// Package checkout turns the active cart into an order. Checkout is purely
// a record append: no stock decrement, no payment capture, no inventory
// reservation.
package checkout

import (
	"errors"
	"fmt"

	"github.com/smanja344-droid/custom-tee-creator/cart"
	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/repository"
)

// GuestUserID marks orders placed without a logged-in account.
const GuestUserID = "guest"

// ErrEmptyCart is returned when checkout is attempted with no lines in the
// cart. Nothing is created and no state changes.
var ErrEmptyCart = errors.New("cart is empty")

// Place creates an order from the cart's current lines and then clears the
// cart. The order total equals the cart total at creation time. The cart is
// only cleared after the order write succeeds, so a failed checkout leaves
// the cart untouched.
func Place(c *cart.Cart, orders *repository.Orders, info models.CustomerInfo) (models.Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	userID := c.UserID()
	if userID == "" {
		userID = GuestUserID
	}

	_, total := models.CartTotals(items)
	order, err := orders.Create(userID, info, items, total)
	if err != nil {
		return models.Order{}, err
	}

	if err := c.Clear(); err != nil {
		return order, fmt.Errorf("order %s created but cart not cleared: %w", order.ID, err)
	}
	return order, nil
}
