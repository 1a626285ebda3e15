package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// The catalog ships embedded in the binary so a fresh process always has
// products to serve. CATALOG_PATH points at a JSON file to serve instead.
//
//go:embed catalog.json
var embeddedCatalog []byte

// Catalog is the immutable product collection loaded once at startup.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// Load reads the catalog from path, or from the embedded seed when path is
// empty. Entries are validated before the catalog is accepted.
func Load(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
		}
		raw = data
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %q: %w", p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q in catalog", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Products returns the full product collection in catalog order. Callers
// must not modify the returned slice.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// ProductByID looks a product up by its identifier.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

func validateProduct(p models.Product) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}
	if p.Price < 0 {
		return fmt.Errorf("negative price %d", p.Price)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("original price %d below sale price %d", *p.OriginalPrice, p.Price)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	for _, s := range p.Sizes {
		if !s.Valid() {
			return fmt.Errorf("unknown size %q", s)
		}
	}
	seenColors := make(map[string]bool)
	for _, col := range p.Colors {
		if col.Name == "" {
			return fmt.Errorf("colour with empty name")
		}
		if seenColors[col.Name] {
			return fmt.Errorf("duplicate colour %q", col.Name)
		}
		seenColors[col.Name] = true
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating %.1f out of range", p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("negative review count %d", p.ReviewCount)
	}
	return nil
}
