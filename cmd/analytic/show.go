package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"MarketAnalytic/internal/model"
	"MarketAnalytic/internal/report"
)

var (
	showWindow string
	showRows   int
)

var showCMD = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Print the summary cards and daily records of one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := model.ParseWindow(showWindow)
		if err != nil {
			return err
		}
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := a.service.View(cmd.Context(), args[0], w)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.FormatView(view, showRows))
		return nil
	},
}

func init() {
	showCMD.Flags().StringVarP(&showWindow, "window", "w", string(model.WindowMonth), "week, month, half-year or year")
	showCMD.Flags().IntVarP(&showRows, "rows", "n", 10, "daily rows to print, 0 for the whole window")
}
