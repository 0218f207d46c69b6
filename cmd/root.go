package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"campaign-sync/internal/config"
)

var errValidationFailed = errors.New("campaign set has validation errors")

// newRootCmd wires every subcommand. Commands that need the store receive
// the shared app through withApp.
func newRootCmd() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "campaign-sync",
		Short:         "Push campaign sets to ad platforms and reconcile them back",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")

	withApp := func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, a, args)
		}
	}

	root.AddCommand(
		newServeCmd(withApp),
		newWorkerCmd(withApp),
		newSyncCmd(withApp),
		newReconcileCmd(withApp),
		newValidateCmd(withApp),
		newMigrateCmd(withApp),
		newSeedCmd(withApp),
	)
	return root
}

type runFunc = func(cmd *cobra.Command, a *app, args []string) error

type appRunner = func(runFunc) func(*cobra.Command, []string) error

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// interrupted reports whether err only says the command was stopped by a
// signal.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}
