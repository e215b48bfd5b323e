package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"MarketAnalytic/internal/api"
	"MarketAnalytic/internal/scheduler"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the daily refresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.Close()
		log := a.log

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if a.cfg.Synth.WarmOnStart {
			report, err := a.service.Warm(ctx)
			if err != nil {
				return err
			}
			log.Info("catalog warmed", "ready", report.Ready, "failed", report.Failed)
		}

		sched := scheduler.NewScheduler(ctx, a.service, log)
		if err := sched.RegisterAll(a.cfg.Schedule.RefreshCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		srv := api.NewServer(a.service, api.Options{
			Addr:           a.cfg.Server.Addr,
			Mode:           a.cfg.Server.Mode,
			RateLimitRPS:   a.cfg.Server.RateLimitRPS,
			RateLimitBurst: a.cfg.Server.RateLimitBurst,
			AllowedOrigins: a.cfg.Server.AllowedOrigins,
			Metrics:        a.metrics,
			Logger:         log,
		})

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			log.Info("shutdown signal received, stopping", "signal", sig.String())
		}

		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown", "error", err)
		}
		log.Info("stopped")
		return nil
	},
}
