package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
)

var rootCMD = &cobra.Command{
	Use:   "analytic",
	Short: "Marketplace analytics dashboard backend",
	Long: `Generates synthetic daily price, sales and seller histories for the
products of a marketplace catalog and serves trailing-window views of them
over HTTP or on the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCMD.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCMD.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CONFIG_PATH or configs/config.yaml)")
	rootCMD.PersistentFlags().StringVar(&envPath, "env", ".env", "dotenv file loaded before the config")

	rootCMD.AddCommand(serveCMD, showCMD, catalogCMD)
}
