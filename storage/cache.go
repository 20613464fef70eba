package storage

import (
	"context"
	"sync"

	"ecommerce-dashboard/models"
)

// Cache loads the dataset at most once per process and hands every caller
// the same read-only snapshot. A failed load is cached too.
type Cache struct {
	source Source

	once sync.Once
	ds   *models.Dataset
	err  error
}

// NewCache wraps a Source.
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Get returns the snapshot, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*models.Dataset, error) {
	c.once.Do(func() {
		c.ds, c.err = c.source.Load(ctx)
	})
	return c.ds, c.err
}
