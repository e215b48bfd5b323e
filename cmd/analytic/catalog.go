package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"MarketAnalytic/internal/model"
	"MarketAnalytic/internal/report"
)

var catalogCMD = &cobra.Command{
	Use:   "catalog [platform-id]",
	Short: "List platforms and products",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		platforms := c.Platforms()
		if len(args) == 1 {
			platforms = nil
			for _, p := range c.Platforms() {
				if p.ID == args[0] {
					platforms = append(platforms, p)
				}
			}
		}
		products := make(map[string][]model.Product, len(platforms))
		for _, p := range platforms {
			if products[p.ID], err = c.Products(p.ID); err != nil {
				return err
			}
		}
		if len(args) == 1 && len(platforms) == 0 {
			_, err := c.Products(args[0])
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.FormatCatalog(platforms, products))
		return nil
	},
}
