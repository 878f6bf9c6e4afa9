package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/payment-recovery/pkg/bootstrap"
	"github.com/Goden-Gun/payment-recovery/pkg/config"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

type simulateFlags struct {
	ConfigDir  string
	ConfigName string
	Catalog    string
	Session    string
	Answers    []string
}

func newSimulateCommand() *cobra.Command {
	flags := &simulateFlags{}

	cmd := &cobra.Command{
		Use:   "simulate <failure.json>",
		Short: "Run the recovery cycle for a failure, answering alerts on the terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}
			failure, err := readFailure(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.LoadServiceConfig(config.LoadOptions{
				ConfigPath:    flags.ConfigDir,
				ConfigName:    flags.ConfigName,
				AllowNoConfig: flags.ConfigName == "",
			})
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if flags.Catalog != "" {
				cfg.Localization.CatalogPath = flags.Catalog
			}
			if err := bootstrap.InitLoggerWithOptions(cfg.Log, bootstrap.LoggerOptions{
				ServiceName: "recoveryctl",
				NodeID:      cfg.App.NodeID,
				Stdout:      cmd.ErrOrStderr(),
			}); err != nil {
				return err
			}

			ctx := cmd.Context()
			shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			executor := newTerminalExecutor(cmd.InOrStdin(), cmd.OutOrStdout(), flags.Answers)
			engine, err := bootstrap.NewEngine(ctx, cfg, executor)
			if err != nil {
				return err
			}
			defer engine.Close()

			if flags.Session != "" {
				ctx = recovery.ContextWithSession(ctx, flags.Session)
			}
			out := cmd.OutOrStdout()
			outcome := engine.Manager.Process(ctx, failure,
				func() { fmt.Fprintln(out, "-> retry requested") },
				func() { fmt.Fprintln(out, "-> alert dismissed") },
			)

			if jsonOutput() {
				return writeJSON(out, outcome)
			}
			fmt.Fprintf(out, "\nhandle %s: %s after %d of %d details", outcome.HandleID, outcome.Result, len(outcome.Steps), outcome.Details)
			if outcome.Aborted {
				fmt.Fprint(out, " (aborted)")
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ConfigDir, "config-dir", "", "Directory holding the service config (default ./configs)")
	cmd.Flags().StringVar(&flags.ConfigName, "config-name", "", "Service config file name without extension")
	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "Alert catalog file overriding the configured one")
	cmd.Flags().StringVar(&flags.Session, "session", "", "Payment session ID recorded with the outcome")
	cmd.Flags().StringSliceVar(&flags.Answers, "answer", nil, "Scripted alert answers (r or d), used before reading stdin")
	return cmd
}
