package models

import (
	"errors"
	"fmt"
)

type Category string

const (
	CategoryMen    Category = "men"
	CategoryWomen  Category = "women"
	CategoryUnisex Category = "unisex"
)

// Product is one catalog entry. Stock is informational only; no operation in
// this core decrements it.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
}

var ErrInvalidProduct = errors.New("invalid product")

// Validate reports whether the product satisfies the catalog constraints.
// The repository does not call this on writes; admin surfaces may.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price %v", ErrInvalidProduct, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: negative stock %d", ErrInvalidProduct, p.Stock)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidProduct)
	}
	switch p.Category {
	case CategoryMen, CategoryWomen, CategoryUnisex:
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, p.Category)
	}
	return nil
}
