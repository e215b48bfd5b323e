package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"MarketAnalytic/internal/model"
	"MarketAnalytic/internal/synth"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	platforms := c.Platforms()
	if len(platforms) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(platforms))
	}
	wantIDs := []string{"wb", "ozon", "ali"}
	for i, p := range platforms {
		if p.ID != wantIDs[i] {
			t.Errorf("platform %d: expected %s, got %s", i, wantIDs[i], p.ID)
		}
		products, err := c.Products(p.ID)
		if err != nil {
			t.Fatalf("products of %s: %v", p.ID, err)
		}
		if len(products) != 5 {
			t.Errorf("%s: expected 5 products, got %d", p.ID, len(products))
		}
		for _, prod := range products {
			if prod.Platform != p.ID {
				t.Errorf("%s: expected platform %s, got %s", prod.ID, p.ID, prod.Platform)
			}
			if err := synth.Validate(prod.Seed); err != nil {
				t.Errorf("%s: default seed invalid: %v", prod.ID, err)
			}
		}
	}
	all, err := All(c)
	if err != nil || len(all) != 15 {
		t.Errorf("expected 15 products, got %d (err=%v)", len(all), err)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := Default()
	p, err := c.Product("oz-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.SeedParameters{BasePrice: 9000, Volatility: 20, Trend: 0.5}
	if p.Seed != want {
		t.Errorf("expected seed %+v, got %+v", want, p.Seed)
	}
	if _, err := c.Product("nope"); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("expected ErrUnknownProduct, got %v", err)
	}
	if _, err := c.Products("ebay"); !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestCatalog_SetSeed(t *testing.T) {
	c := Default()
	next := model.SeedParameters{BasePrice: 1000, Volatility: 1, Trend: 0}
	if err := c.SetSeed("wb-1", next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := c.Product("wb-1")
	if p.Seed != next {
		t.Errorf("expected seed %+v, got %+v", next, p.Seed)
	}
	if err := c.SetSeed("missing", next); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestNew_Rejects(t *testing.T) {
	prod := model.Product{ID: "a-1", Seed: model.SeedParameters{BasePrice: 1}}
	tests := []struct {
		name    string
		entries []PlatformEntry
	}{
		{"empty platform", []PlatformEntry{{Platform: model.Platform{ID: "a"}}}},
		{"missing platform id", []PlatformEntry{{Products: []model.Product{prod}}}},
		{"duplicate platform", []PlatformEntry{
			{Platform: model.Platform{ID: "a"}, Products: []model.Product{prod}},
			{Platform: model.Platform{ID: "a"}, Products: []model.Product{{ID: "a-2"}}},
		}},
		{"duplicate product", []PlatformEntry{
			{Platform: model.Platform{ID: "a"}, Products: []model.Product{prod}},
			{Platform: model.Platform{ID: "b"}, Products: []model.Product{prod}},
		}},
		{"missing product id", []PlatformEntry{{Platform: model.Platform{ID: "a"}, Products: []model.Product{{Name: "x"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.entries); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	doc := `
platforms:
  - id: shop
    name: Shop
    products:
      - id: shop-1
        name: Kettle
        category: Kitchen
        current_price: 2500
        trend_percent: -3
        seed:
          base_price: 2400
          volatility: 15
          trend: 0.25
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := c.Product("shop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Platform != "shop" || p.Name != "Kettle" || p.TrendPercent != -3 {
		t.Errorf("unexpected product %+v", p)
	}
	if p.Seed != (model.SeedParameters{BasePrice: 2400, Volatility: 15, Trend: 0.25}) {
		t.Errorf("unexpected seed %+v", p.Seed)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Parse([]byte("platforms: []\n")); err == nil {
		t.Error("expected error for empty catalog")
	}
	if _, err := Parse([]byte("platforms: [:")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
