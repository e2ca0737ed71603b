package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

// Orders is the append-only order log. Orders are never deleted; only the
// status and explicitly updated fields change after creation.
type Orders struct {
	col *store.Collection[models.Order]
}

func NewOrders(kv store.KeyValue) *Orders {
	return &Orders{col: store.NewCollection(kv, ordersKey, func(o models.Order) string { return o.ID })}
}

// newOrderRef generates a unique order reference, e.g. ORD20250908130500-<uuid>.
func newOrderRef() string {
	return "ORD" + time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Create appends a new order with a fresh id, pending status and creation
// timestamp. Items and total are recorded as passed; the caller snapshots
// the cart.
func (r *Orders) Create(userID string, info models.CustomerInfo, items []models.CartItem, total float64) (models.Order, error) {
	order := models.Order{
		ID:              newOrderRef(),
		UserID:          userID,
		CustomerName:    info.Name,
		CustomerEmail:   info.Email,
		CustomerPhone:   info.Phone,
		ShippingAddress: info.Address,
		Items:           items,
		Total:           total,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	return r.col.Insert(order)
}

// ListAll returns every order in creation order.
func (r *Orders) ListAll() ([]models.Order, error) {
	return r.col.List()
}

// ListByUser returns the orders placed by userID, in creation order.
func (r *Orders) ListByUser(userID string) ([]models.Order, error) {
	orders, err := r.col.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (r *Orders) FindByID(id string) (models.Order, bool, error) {
	return r.col.FindByID(id)
}

// UpdateStatus advances the order one step along the
// pending -> processing -> shipped -> delivered lifecycle.
func (r *Orders) UpdateStatus(id string, next models.OrderStatus) (models.Order, error) {
	return r.col.Update(id, func(o *models.Order) error {
		if !models.ValidTransition(o.Status, next) {
			return fmt.Errorf("%w: %s -> %s", models.ErrBadTransition, o.Status, next)
		}
		o.Status = next
		return nil
	})
}

// Update applies apply to the order with the given id. Status changes should
// go through UpdateStatus so the lifecycle stays valid.
func (r *Orders) Update(id string, apply func(*models.Order) error) (models.Order, error) {
	return r.col.Update(id, apply)
}
