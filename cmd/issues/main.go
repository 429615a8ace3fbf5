package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kidandcat/issues/internal/config"
	"github.com/kidandcat/issues/internal/store"
	"github.com/kidandcat/issues/internal/web"
)

var (
	flagConfig  string
	flagAddr    string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "issues",
	Short: "Multi-project issue tracker",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tracker web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagAddr != "" {
			cfg.Addr = flagAddr
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		st, err := store.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.EnsureAdmin(); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		return web.New(cfg, st, logger).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&flagConfig, "config", "c", "issues.yaml", "path to config file")
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "data directory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
