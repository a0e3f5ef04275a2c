// Package main is the cbx entry point: the HTTP API plus one-shot maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName = "cbx"
	// configNameEnv selects the YAML file config.New loads.
	configNameEnv = "CBX_CONFIG_NAME"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configName string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Personal productivity portal API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configName == "" {
				return nil
			}

			return os.Setenv(configNameEnv, configName)
		},
	}

	cmd.PersistentFlags().StringVarP(&configName, "config", "c", "", "Config file name without .yaml (default \"config\")")

	cmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
