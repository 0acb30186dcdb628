package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/config"
	"perception-quiz-service/internal/content"
	transport "perception-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := resolvePort(portFlag, cfg)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	cache, closeCache := openStatsCache(cfg)
	defer closeCache()

	service := app.NewResponseService(store, cache, content.NewCatalog())
	defer service.Close()

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(service, cfg.Server.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		glog.Infof("starting quiz service on :%s (store: %s)", finalPort, config.StoreKind(cfg.Database.URL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			glog.Errorf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		glog.Info("shutting down server...")
	case <-ctx.Done():
		glog.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// resolvePort picks the listen port: flag, then $PORT, then server.port, then 8080.
func resolvePort(flagValue string, cfg config.Config) string {
	for _, p := range []string{flagValue, os.Getenv("PORT"), cfg.Server.Port} {
		if p != "" {
			return p
		}
	}
	return "8080"
}
