// Command storectl is the operator CLI for the storefront: it browses the
// catalog, runs content generation and manages database migrations.
package main

import (
	"fmt"
	"os"

	"sialkot-shop/internal/config"
	"sialkot-shop/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	envFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Operate the Sialkot storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.envFile != "" {
				if err := godotenv.Load(c.envFile); err != nil {
					return fmt.Errorf("failed to load %s: %w", c.envFile, err)
				}
			}
			c.cfg = config.Load()

			log, err := logger.New(c.cfg.Server.Env, c.cfg.Server.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				c.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "Load environment variables from this file first")

	root.AddCommand(c.generateCmd())
	root.AddCommand(c.productsCmd())
	root.AddCommand(c.migrateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
