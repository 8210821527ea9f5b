package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"driverpay/internal/domain/payroll"
	"driverpay/internal/platform/config"
	"driverpay/internal/platform/logging"
)

var version = "dev"

// cli carries the state shared by every subcommand once the root command has
// loaded configuration.
type cli struct {
	configFile string
	logLevel   string
	logFormat  string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "driverpay",
		Short: "Split a driver's monthly salary across mid-week and weekend work",
		Long: `driverpay reads a monthly driver timesheet (xlsx, xls or csv), classifies every
worked day and apportions the month's salary into overtime tiers and the
Batmach (mid-week) and Minhala (weekend/holiday) buckets.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.init,
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(computeCmd(c))
	root.AddCommand(sheetsCmd(c))
	root.AddCommand(serveCmd(c))
	root.AddCommand(tokenCmd(c))
	root.AddCommand(versionCmd())
	return root
}

func (c *cli) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.logFormat != "" {
		cfg.LogFormat = c.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) service() *payroll.Service {
	return payroll.NewService(payroll.ServiceConfig{
		Drivers:            c.cfg.Drivers,
		Currency:           c.cfg.Currency,
		SheetHeaderRow:     c.cfg.SheetHeaderRow,
		DelimitedHeaderRow: c.cfg.DelimitedHeaderRow,
	}, nil)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		slog.Debug("command failed", "reason", payroll.Code(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
