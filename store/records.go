package store

import (
	"encoding/json"
	"fmt"
)

// Collection is a typed record set persisted as one JSON array under a
// single key. Reads decode the whole blob; writes re-encode and replace it
// in one Set, so a write either fully lands or the prior state persists.
type Collection[T any] struct {
	kv  KeyValue
	key string
	id  func(T) string
}

// NewCollection binds a collection key in kv to the record type T. id
// extracts the unique record id used by Insert and Update.
func NewCollection[T any](kv KeyValue, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, id: id}
}

// List returns every record in stored order. An absent key yields an empty
// slice, never an error.
func (c *Collection[T]) List() ([]T, error) {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var recs []T
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("failed to decode collection %q: %w", c.key, err)
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

// FindOne returns the first record matching pred, scanning in stored order.
func (c *Collection[T]) FindOne(pred func(T) bool) (T, bool, error) {
	var zero T
	recs, err := c.List()
	if err != nil {
		return zero, false, err
	}
	for _, rec := range recs {
		if pred(rec) {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// FindByID returns the record whose id matches.
func (c *Collection[T]) FindByID(id string) (T, bool, error) {
	return c.FindOne(func(rec T) bool { return c.id(rec) == id })
}

// Insert appends rec to the collection. The record id must not already be
// present.
func (c *Collection[T]) Insert(rec T) (T, error) {
	var zero T
	recs, err := c.List()
	if err != nil {
		return zero, err
	}
	id := c.id(rec)
	for _, existing := range recs {
		if c.id(existing) == id {
			return zero, fmt.Errorf("%w: %q in %q", ErrDuplicateID, id, c.key)
		}
	}
	recs = append(recs, rec)
	if err := c.save(recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies apply to the record with the given id and persists the
// collection. Returns ErrNotFound when the id is absent. The read-apply-save
// cycle is a whole-document replacement, not an incremental patch.
func (c *Collection[T]) Update(id string, apply func(*T) error) (T, error) {
	var zero T
	recs, err := c.List()
	if err != nil {
		return zero, err
	}
	for i := range recs {
		if c.id(recs[i]) != id {
			continue
		}
		if err := apply(&recs[i]); err != nil {
			return zero, err
		}
		if err := c.save(recs); err != nil {
			return zero, err
		}
		return recs[i], nil
	}
	return zero, fmt.Errorf("%w: %q in %q", ErrNotFound, id, c.key)
}

func (c *Collection[T]) save(recs []T) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.key, err)
	}
	return c.kv.Set(c.key, string(data))
}
