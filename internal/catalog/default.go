package catalog

import "MarketAnalytic/internal/model"

func seed(base, vol, trend float64) model.SeedParameters {
	return model.SeedParameters{BasePrice: base, Volatility: vol, Trend: trend}
}

// DefaultEntries is the demo catalog: three marketplaces, five products each.
func DefaultEntries() []PlatformEntry {
	return []PlatformEntry{
		{
			Platform: model.Platform{ID: "wb", Name: "Wildberries"},
			Products: []model.Product{
				{ID: "wb-1", Name: "iPhone 15 Pro Max 256GB", Category: "Смартфоны", CurrentPrice: 135000, TrendPercent: 12, Seed: seed(130000, 500, 5)},
				{ID: "wb-2", Name: "Xiaomi Robot Vacuum S10", Category: "Бытовая техника", CurrentPrice: 18900, TrendPercent: -2, Seed: seed(19000, 100, -1)},
				{ID: "wb-3", Name: "AirPods Pro 2", Category: "Наушники", CurrentPrice: 24000, TrendPercent: 5, Seed: seed(23000, 200, 2)},
				{ID: "wb-4", Name: "Dyson Supersonic HD07", Category: "Красота и здоровье", CurrentPrice: 45000, TrendPercent: 8, Seed: seed(42000, 300, 3)},
				{ID: "wb-5", Name: "Samsung Galaxy Watch 6", Category: "Умные часы", CurrentPrice: 22000, TrendPercent: 0, Seed: seed(25000, 150, -2)},
			},
		},
		{
			Platform: model.Platform{ID: "ozon", Name: "Ozon"},
			Products: []model.Product{
				{ID: "oz-1", Name: "ASUS TUF Gaming F15", Category: "Ноутбуки", CurrentPrice: 85000, TrendPercent: 15, Seed: seed(80000, 400, 10)},
				{ID: "oz-2", Name: "Sony WH-1000XM5", Category: "Наушники", CurrentPrice: 34000, TrendPercent: 3, Seed: seed(32000, 200, 1)},
				{ID: "oz-3", Name: "Яндекс Станция Макс", Category: "Умный дом", CurrentPrice: 29990, TrendPercent: 25, Seed: seed(27000, 50, 5)},
				{ID: "oz-4", Name: "Samsung Monitor Odyssey", Category: "Мониторы", CurrentPrice: 41000, TrendPercent: -5, Seed: seed(45000, 300, -3)},
				{ID: "oz-5", Name: "Logitech MX Master 3S", Category: "Периферия", CurrentPrice: 9500, TrendPercent: 1, Seed: seed(9000, 20, 0.5)},
			},
		},
		{
			Platform: model.Platform{ID: "ali", Name: "AliExpress"},
			Products: []model.Product{
				{ID: "ali-1", Name: "Lenovo Legion Y700", Category: "Планшеты", CurrentPrice: 32000, TrendPercent: 45, Seed: seed(28000, 200, 8)},
				{ID: "ali-2", Name: "Anker Soundcore Q45", Category: "Наушники", CurrentPrice: 7500, TrendPercent: 10, Seed: seed(6000, 50, 3)},
				{ID: "ali-3", Name: "Baseus Power Bank 65W", Category: "Аксессуары", CurrentPrice: 4200, TrendPercent: 8, Seed: seed(3500, 20, 2)},
				{ID: "ali-4", Name: "Creality Ender 3 V3", Category: "3D Принтеры", CurrentPrice: 19000, TrendPercent: -1, Seed: seed(21000, 150, -4)},
				{ID: "ali-5", Name: "Zeblaze Stratos 3", Category: "Умные часы", CurrentPrice: 5500, TrendPercent: 4, Seed: seed(5000, 30, 1)},
			},
		},
	}
}

// Default returns a Catalog holding DefaultEntries.
func Default() *Catalog {
	c, err := New(DefaultEntries())
	if err != nil {
		panic("catalog: invalid default entries: " + err.Error())
	}
	return c
}
