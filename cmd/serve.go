package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "campaign-sync/internal/adapter/http"
	"campaign-sync/internal/adapter/progress"
	"campaign-sync/internal/adapter/queue"
	"campaign-sync/internal/core/port"
)

func newServeCmd(withApp appRunner) *cobra.Command {
	var withQueue bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the progress websocket",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			return serve(cmd.Context(), a, withQueue)
		}),
	}
	cmd.Flags().BoolVar(&withQueue, "with-queue", false, "connect to RabbitMQ so jobs can be enqueued over HTTP")
	return cmd
}

func serve(ctx context.Context, a *app, withQueue bool) error {
	logger := a.logger
	hub := progress.NewHub(a.cfg.Sync.ProgressBuffer, logger)
	defer hub.Close()
	reporter := progress.Multi{progress.NewLogReporter(logger), hub}

	var jobs port.JobPublisher
	if withQueue {
		conn, ch, err := queue.Dial(a.cfg.AMQP.URL, a.cfg.AMQP.Queue)
		if err != nil {
			return err
		}
		defer conn.Close()
		defer ch.Close()
		jobs = queue.NewPublisher(ch, a.cfg.AMQP.Queue)
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Sync:      a.syncService(reporter),
		Validate:  a.validationService(),
		Reconcile: a.reconciler(),
		Jobs:      jobs,
		Progress:  hub,
		Metrics:   promhttp.HandlerFor(a.promReg, promhttp.HandlerOpts{}),
	}, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	// websocket clients hold their requests open until the hub closes
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
