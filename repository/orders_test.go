package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

var testInfo = models.CustomerInfo{
	Name:    "Jo Buyer",
	Email:   "jo@example.com",
	Phone:   "555-0100",
	Address: "1 Main St",
}

func TestOrders_Create(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	items := []models.CartItem{line("a", 29.99, 1)}
	order, err := orders.Create("user-1", testInfo, items, 29.99)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, "Jo Buyer", order.CustomerName)
	assert.Equal(t, items, order.Items)
	assert.InDelta(t, 29.99, order.Total, 1e-9)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrders_IDsAreDistinct(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		order, err := orders.Create("user-1", testInfo, []models.CartItem{line("a", 1, 1)}, 1)
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "order id %s repeated", order.ID)
		seen[order.ID] = true
	}
}

func TestOrders_ListByUser(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	first, err := orders.Create("user-1", testInfo, []models.CartItem{line("a", 1, 1)}, 1)
	require.NoError(t, err)
	_, err = orders.Create("user-2", testInfo, []models.CartItem{line("b", 2, 1)}, 2)
	require.NoError(t, err)
	second, err := orders.Create("user-1", testInfo, []models.CartItem{line("c", 3, 1)}, 3)
	require.NoError(t, err)

	mine, err := orders.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)

	all, err := orders.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := orders.ListByUser("user-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrders_UpdateStatusWalksLifecycle(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	order, err := orders.Create("user-1", testInfo, []models.CartItem{line("a", 1, 1)}, 1)
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := orders.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestOrders_UpdateStatusRejectsBadTransitions(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	order, err := orders.Create("user-1", testInfo, []models.CartItem{line("a", 1, 1)}, 1)
	require.NoError(t, err)

	// Skipping ahead.
	_, err = orders.UpdateStatus(order.ID, models.OrderStatusDelivered)
	require.ErrorIs(t, err, models.ErrBadTransition)

	// Going backwards.
	_, err = orders.UpdateStatus(order.ID, models.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = orders.UpdateStatus(order.ID, models.OrderStatusPending)
	require.ErrorIs(t, err, models.ErrBadTransition)

	// A rejected transition leaves the stored status alone.
	got, ok, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusProcessing, got.Status)
}

func TestOrders_UpdateAbsent(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	_, err := orders.UpdateStatus("missing", models.OrderStatusProcessing)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrders_UpdateExplicitFields(t *testing.T) {
	orders := NewOrders(store.NewMemory())

	order, err := orders.Create("user-1", testInfo, []models.CartItem{line("a", 1, 1)}, 1)
	require.NoError(t, err)

	updated, err := orders.Update(order.ID, func(o *models.Order) error {
		o.ShippingAddress = "2 Side St"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", updated.ShippingAddress)
	// Untouched fields keep their creation-time snapshot.
	assert.Equal(t, order.Items, updated.Items)
	assert.InDelta(t, order.Total, updated.Total, 1e-9)
}
