package model

// Platform is a marketplace the catalog lists products for.
type Platform struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Product is a catalog entry. Only Seed feeds history synthesis; the rest is
// display data owned by the catalog.
type Product struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Category     string         `json:"category" yaml:"category"`
	Platform     string         `json:"platform" yaml:"-"`
	CurrentPrice float64        `json:"current_price" yaml:"current_price"`
	TrendPercent float64        `json:"trend_percent" yaml:"trend_percent"`
	Seed         SeedParameters `json:"seed" yaml:"seed"`
}
