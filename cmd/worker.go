package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-sync/internal/adapter/progress"
	"campaign-sync/internal/adapter/queue"
)

func newWorkerCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume sync and reconcile jobs from RabbitMQ",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			conn, ch, err := queue.Dial(a.cfg.AMQP.URL, a.cfg.AMQP.Queue)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer ch.Close()

			processor := queue.NewProcessor(
				a.syncService(progress.NewLogReporter(a.logger)),
				a.reconciler(),
				queue.WithBackoff(a.cfg.Backoff.Config()),
				queue.WithMaxAttempts(a.cfg.AMQP.MaxAttempts),
				queue.WithProcessorMetrics(a.metrics),
				queue.WithProcessorLogger(a.logger),
			)
			consumer := queue.NewConsumer(ch, a.cfg.AMQP.Queue, a.cfg.AMQP.Prefetch, processor, a.logger)

			err = consumer.Run(cmd.Context())
			if interrupted(cmd.Context(), err) {
				a.logger.Info("worker stopped")
				return nil
			}
			a.logger.Error("worker stopped", slog.Any("error", err))
			return err
		}),
	}
}
