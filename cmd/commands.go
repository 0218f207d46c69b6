package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-sync/internal/adapter/progress"
	"campaign-sync/internal/config/configs"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/db"
)

func newSyncCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <campaign-set-id>",
		Short: "Sync one campaign set to its platforms and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			svc := a.syncService(progress.NewLogReporter(a.logger))
			res, err := svc.SyncCampaignSet(cmd.Context(), args[0])
			if err != nil && res.CampaignSetID == "" {
				return err
			}
			// a cancelled run still prints what was done
			if perr := printJSON(cmd.OutOrStdout(), res); perr != nil {
				return perr
			}
			return err
		}),
	}
}

func newReconcileCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <account-id>",
		Short: "Pull platform state for every synced campaign of an account",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			res, err := a.reconciler().ReconcileAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		}),
	}
}

type validationReport struct {
	Valid  bool                     `json:"valid"`
	Errors []domain.ValidationError `json:"errors"`
}

func newValidateCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <campaign-set-id>",
		Short: "Run the pre-flight validators; exits 2 when problems are found",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			errs, err := a.validationService().ValidateCampaignSet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if errs == nil {
				errs = []domain.ValidationError{}
			}
			if err := printJSON(cmd.OutOrStdout(), validationReport{Valid: len(errs) == 0, Errors: errs}); err != nil {
				return err
			}
			if len(errs) > 0 {
				return errValidationFailed
			}
			return nil
		}),
	}
}

func newMigrateCmd(withApp appRunner) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema of the configured store",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			// opening a sqlite store already applied its schema
			if a.cfg.Store.Driver != configs.StorePostgres {
				if down {
					return fmt.Errorf("rollback is not supported for the %s store", a.cfg.Store.Driver)
				}
				a.logger.Info("schema is up to date", slog.String("driver", a.cfg.Store.Driver))
				return nil
			}
			step, verb := db.Migrate, "applied"
			if down {
				step, verb = db.Rollback, "rolled back"
			}
			v, err := step(a.cfg.Psql.Addr.String())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations "+verb, slog.Uint64("version", uint64(v)))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration (postgres only)")
	return cmd
}

func newSeedCmd(withApp appRunner) *cobra.Command {
	var (
		accountID string
		platforms []string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo campaign set and print its id",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			ps := make([]domain.Platform, 0, len(platforms))
			for _, p := range platforms {
				ps = append(ps, domain.NormalizePlatform(p))
			}
			set, err := db.Seed(cmd.Context(), a.store, accountID, ps...)
			if err != nil {
				return err
			}
			a.logger.Info("demo campaign set created",
				slog.String("campaign_set_id", set.ID),
				slog.Int("campaigns", len(set.Campaigns)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), set.ID)
			return err
		}),
	}
	cmd.Flags().StringVar(&accountID, "account", "demo-account", "ad account id of the demo set")
	cmd.Flags().StringSliceVar(&platforms, "platforms", []string{"reddit", "google"}, "platforms the demo campaigns target")
	return cmd
}
