// Package repository exposes stateless façades over the store collections.
// Collection keys keep the ct_ naming of the persisted storefront layout.
package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

const (
	usersKey     = "ct_users"
	productsKey  = "ct_products"
	ordersKey    = "ct_orders"
	cartsKey     = "ct_carts"
	guestCartKey = "ct_guestCart"
)

// Users reads and writes account records.
type Users struct {
	col *store.Collection[models.User]
}

func NewUsers(kv store.KeyValue) *Users {
	return &Users{col: store.NewCollection(kv, usersKey, func(u models.User) string { return u.ID })}
}

// FindByEmail scans for the first account with a matching email. The match
// is case-sensitive, as stored.
func (r *Users) FindByEmail(email string) (models.User, bool, error) {
	return r.col.FindOne(func(u models.User) bool { return u.Email == email })
}

func (r *Users) FindByID(id string) (models.User, bool, error) {
	return r.col.FindByID(id)
}

// Create registers a new customer account. Uniqueness of the email is the
// caller's responsibility (session.Signup checks before creating).
func (r *Users) Create(email, password, name string) (models.User, error) {
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
	}
	return r.col.Insert(user)
}
