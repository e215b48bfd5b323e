// Package report renders dashboard data as plain text for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"MarketAnalytic/internal/dashboard"
	"MarketAnalytic/internal/model"
)

const currency = "₽"

// TrendBadge renders a trend percentage the way the product list shows it.
func TrendBadge(trend float64) string {
	switch {
	case trend > 0:
		return "+" + humanize.Ftoa(trend) + "%"
	case trend < 0:
		return humanize.Ftoa(trend) + "%"
	default:
		return "0%"
	}
}

// FormatView renders the summary cards of a view followed by its newest
// rows records. rows <= 0 prints every record.
func FormatView(v *dashboard.View, rows int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s [%s] %s\n", v.Product.Name, v.Product.Platform, TrendBadge(v.Product.TrendPercent)))
	b.WriteString(fmt.Sprintf("Window: %s (%s .. %s, %d days)\n\n", v.Window, v.From, v.To, len(v.Records)))

	b.WriteString(fmt.Sprintf("Average price:  %s %s\n", humanize.Comma(v.Stats.AveragePrice), currency))
	b.WriteString(fmt.Sprintf("Units sold:     %s\n", humanize.Comma(v.Stats.TotalUnitsSold)))
	b.WriteString(fmt.Sprintf("Peak sellers:   %s\n", humanize.Comma(v.Stats.PeakActiveSellers)))

	records := v.Records
	if rows > 0 && rows < len(records) {
		records = records[len(records)-rows:]
	}
	if len(records) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-10s  %10s  %6s  %7s  %14s\n", "Date", "Price", "Units", "Sellers", "Revenue"))
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%-10s  %10s  %6s  %7d  %14s\n",
			r.Day(), humanize.Comma(r.Price), humanize.Comma(r.UnitsSold), r.ActiveSellers, humanize.Comma(r.Revenue)))
	}
	return b.String()
}

// FormatCatalog lists every platform with its products.
func FormatCatalog(platforms []model.Platform, products map[string][]model.Product) string {
	var b strings.Builder
	for i, p := range platforms {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s (%s)\n", p.Name, p.ID))
		for _, prod := range products[p.ID] {
			b.WriteString(fmt.Sprintf("  %-7s %-28s %-20s %12s %s  %s\n",
				prod.ID, prod.Name, prod.Category,
				humanize.Commaf(prod.CurrentPrice), currency, TrendBadge(prod.TrendPercent)))
		}
	}
	return b.String()
}
