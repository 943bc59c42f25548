package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlviz/internal/config"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/internal/server"
	"github.com/katalvlaran/lvlviz/run"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP visualization server",
	Long: `Starts the REST and WebSocket surface: runs start over POST and
every published frame fans out to the connected stream clients.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		log := logging.New(cfg.Level())
		gin.SetMode(gin.ReleaseMode)

		registry := prometheus.NewRegistry()
		metrics := run.NewMetrics(registry)

		hub := server.NewHub(log)
		ctrl := run.New(
			run.WithLogger(log),
			run.WithMetrics(metrics),
			run.WithArraySink(hub),
			run.WithGraphSink(hub),
		)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: server.NewServer(cfg, log, ctrl, hub, registry).Routes(),
		}

		go func() {
			log.Info("http server starting", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("http server failed", logging.Err(err))
				os.Exit(1)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)
		sig := <-quit

		log.Info("shutting down", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logging.Err(err))
			_ = srv.Close()
		}

		// End the active run and push its final status before the
		// stream goes away.
		ctrl.Stop()
		hub.Close()

		log.Info("server exited")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", config.DefaultAddr, "HTTP listen address")
}
