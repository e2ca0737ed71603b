package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

//go:embed seed.yaml
var seedYAML []byte

type seedUser struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

type seedProduct struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Category    string   `yaml:"category"`
	Sizes       []string `yaml:"sizes"`
	Stock       int      `yaml:"stock"`
	Image       string   `yaml:"image"`
}

type seedData struct {
	Users    []seedUser    `yaml:"users"`
	Products []seedProduct `yaml:"products"`
}

func loadSeed() (seedData, error) {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return seedData{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return data, nil
}

// Seed initializes every collection that is still absent: the bootstrap
// users, the sample catalog, an empty order log and an empty carts map.
// Present collections are left untouched, so Seed is safe to call on every
// start.
func Seed(kv store.KeyValue) error {
	if err := seedUsers(kv); err != nil {
		return err
	}
	if err := seedProducts(kv); err != nil {
		return err
	}
	if err := seedEmpty(kv, ordersKey, "[]"); err != nil {
		return err
	}
	return seedEmpty(kv, cartsKey, "{}")
}

func seedUsers(kv store.KeyValue) error {
	if _, ok, err := kv.Get(usersKey); err != nil || ok {
		return err
	}
	data, err := loadSeed()
	if err != nil {
		return err
	}
	users := make([]models.User, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, models.User{
			ID:        u.ID,
			Email:     u.Email,
			Password:  u.Password,
			Name:      u.Name,
			Role:      models.Role(u.Role),
			CreatedAt: time.Now(),
		})
	}
	return writeJSON(kv, usersKey, users)
}

// seedProducts writes the fixed six-entry catalog when the products
// collection is absent. Ids are assigned by position, starting at "1".
func seedProducts(kv store.KeyValue) error {
	if _, ok, err := kv.Get(productsKey); err != nil || ok {
		return err
	}
	data, err := loadSeed()
	if err != nil {
		return err
	}
	products := make([]models.Product, 0, len(data.Products))
	for i, p := range data.Products {
		products = append(products, models.Product{
			ID:          strconv.Itoa(i + 1),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    models.Category(p.Category),
			Sizes:       p.Sizes,
			Stock:       p.Stock,
			Image:       p.Image,
		})
	}
	return writeJSON(kv, productsKey, products)
}

func seedEmpty(kv store.KeyValue, key, empty string) error {
	if _, ok, err := kv.Get(key); err != nil || ok {
		return err
	}
	return kv.Set(key, empty)
}

func writeJSON(kv store.KeyValue, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode seed for %q: %w", key, err)
	}
	return kv.Set(key, string(data))
}
