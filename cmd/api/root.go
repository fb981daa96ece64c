package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/telemetry"
)

const app = "resume-matcher"

var (
	cfgFile string
	host    string
	port    string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resume-matcher extracts skills from PDF resumes and recommends matching jobs",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	defer telemetry.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is environment and .env only)")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "listen host, overrides HOST")
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "listen port, overrides PORT")

	rootCmd.AddCommand(serveCmd, scanCmd, versionCmd)
}

// loadConfig reads configuration, applies flag overrides and installs the logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if h := strings.TrimSpace(host); h != "" {
		cfg.Host = h
	}
	if p := strings.TrimSpace(port); p != "" {
		cfg.Port = p
	}
	if err := telemetry.Configure(telemetry.Options{JSON: cfg.LogJSON, Debug: cfg.LogDebug}); err != nil {
		return cfg, fmt.Errorf("configure logger: %w", err)
	}
	return cfg, nil
}
