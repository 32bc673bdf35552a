package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/tweeter/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "tweeter",
	Short:   "Static server for the Tweeter page",
	Long: `Tweeter serves the Tweeter page, its stylesheet and its script
from a fixed route table. Every other path answers with the 404 page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFiles, _ := cmd.Flags().GetStringSlice("config")

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg.Log)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path, repeatable (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("public-dir", "", "directory holding the page resources (default: ./public, env: TWEETER_STORAGE_PATH)")
	rootCmd.PersistentFlags().Bool("embedded", false, "serve the resources compiled into the binary (env: TWEETER_STORAGE_EMBEDDED)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (default: text)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
