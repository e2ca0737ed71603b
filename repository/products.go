package repository

import (
	"github.com/google/uuid"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

// Products reads and writes catalog records. The catalog is seeded with the
// fixed sample set the first time it is read.
type Products struct {
	kv  store.KeyValue
	col *store.Collection[models.Product]
}

func NewProducts(kv store.KeyValue) *Products {
	return &Products{
		kv:  kv,
		col: store.NewCollection(kv, productsKey, func(p models.Product) string { return p.ID }),
	}
}

func (r *Products) List() ([]models.Product, error) {
	if err := seedProducts(r.kv); err != nil {
		return nil, err
	}
	return r.col.List()
}

func (r *Products) FindByID(id string) (models.Product, bool, error) {
	if err := seedProducts(r.kv); err != nil {
		return models.Product{}, false, err
	}
	return r.col.FindByID(id)
}

// Create adds a catalog entry with a fresh id. Field validity is not
// enforced here; see models.Product.Validate.
func (r *Products) Create(p models.Product) (models.Product, error) {
	if err := seedProducts(r.kv); err != nil {
		return models.Product{}, err
	}
	p.ID = uuid.NewString()
	return r.col.Insert(p)
}

// Update applies apply to the product with the given id.
func (r *Products) Update(id string, apply func(*models.Product) error) (models.Product, error) {
	if err := seedProducts(r.kv); err != nil {
		return models.Product{}, err
	}
	return r.col.Update(id, apply)
}
