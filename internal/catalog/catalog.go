// Package catalog lists the platforms and products the dashboard can show.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"MarketAnalytic/internal/model"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownProduct  = errors.New("unknown product")
)

// Provider is the read side of a catalog.
type Provider interface {
	Platforms() []model.Platform
	Products(platformID string) ([]model.Product, error)
	Product(productID string) (model.Product, error)
}

// Catalog is an in-memory Provider. Seeds may be replaced at runtime; callers
// holding a cached series notice the change by comparing seeds.
type Catalog struct {
	mu        sync.RWMutex
	platforms []model.Platform
	byPlat    map[string][]string
	products  map[string]model.Product
}

// PlatformEntry is one platform with its products, in display order.
type PlatformEntry struct {
	Platform model.Platform
	Products []model.Product
}

// New builds a Catalog, rejecting empty platforms and duplicate ids.
func New(entries []PlatformEntry) (*Catalog, error) {
	c := &Catalog{
		byPlat:   make(map[string][]string, len(entries)),
		products: make(map[string]model.Product),
	}
	for _, e := range entries {
		if e.Platform.ID == "" {
			return nil, errors.New("platform id is required")
		}
		if _, dup := c.byPlat[e.Platform.ID]; dup {
			return nil, fmt.Errorf("duplicate platform %q", e.Platform.ID)
		}
		if len(e.Products) == 0 {
			return nil, fmt.Errorf("platform %q has no products", e.Platform.ID)
		}
		ids := make([]string, 0, len(e.Products))
		for _, p := range e.Products {
			if p.ID == "" {
				return nil, fmt.Errorf("platform %q: product id is required", e.Platform.ID)
			}
			if _, dup := c.products[p.ID]; dup {
				return nil, fmt.Errorf("duplicate product %q", p.ID)
			}
			p.Platform = e.Platform.ID
			c.products[p.ID] = p
			ids = append(ids, p.ID)
		}
		c.platforms = append(c.platforms, e.Platform)
		c.byPlat[e.Platform.ID] = ids
	}
	return c, nil
}

func (c *Catalog) Platforms() []model.Platform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Platform, len(c.platforms))
	copy(out, c.platforms)
	return out
}

func (c *Catalog) Products(platformID string) ([]model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids, ok := c.byPlat[platformID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platformID)
	}
	out := make([]model.Product, len(ids))
	for i, id := range ids {
		out[i] = c.products[id]
	}
	return out, nil
}

func (c *Catalog) Product(productID string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	return p, nil
}

// SetSeed replaces the seed parameters of a product.
func (c *Catalog) SetSeed(productID string, seed model.SeedParameters) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[productID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	p.Seed = seed
	c.products[productID] = p
	return nil
}

// All returns every product of every platform in display order.
func All(p Provider) ([]model.Product, error) {
	var out []model.Product
	for _, plat := range p.Platforms() {
		products, err := p.Products(plat.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, products...)
	}
	return out, nil
}
