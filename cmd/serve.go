package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/voicelab/coach-api/api"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/database"
	"github.com/voicelab/coach-api/internal/services/auth"
	"github.com/voicelab/coach-api/pkg/config"
	"github.com/voicelab/coach-api/pkg/logger"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the VoiceLab Coach API server with the configured settings.

The server validates bearer tokens against the configured JWKS endpoint,
serves the lesson, annotation, recording and profile routes, and stores
uploaded audio in the configured object storage buckets.

Example:
  coach-api serve
  coach-api serve --port 9090
  coach-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	authService, err := buildAuthService(cfg)
	if err != nil {
		return err
	}

	attempts := auth.NewAttemptStore(cfg.Auth.MaxAttempts, cfg.Auth.AttemptWindow, cfg.Auth.LockoutWindow, nil)

	// Expired attempt entries are keyed by client IP and would otherwise
	// accumulate for the life of the process.
	sweepStop := make(chan struct{})
	go attempts.SweepLoop(10*time.Minute, sweepStop)
	defer close(sweepStop)

	deps := &types.Dependencies{
		DB:           db,
		AuthService:  authService,
		AttemptStore: attempts,
		Log:          log,
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	log.Info("Starting server", "host", serverHost, "port", serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Info("Shutting down server")
	case err := <-serverErr:
		log.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

// buildAuthService constructs token validation from config. A JWKS URL is
// required outside of dev bypass mode.
func buildAuthService(cfg *config.Config) (*auth.Service, error) {
	if cfg.Auth.JWKSURL != "" {
		service, err := auth.NewService(cfg.Auth.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("initializing auth: %w", err)
		}
		return service, nil
	}
	if cfg.Auth.DevBypass {
		return auth.NewDevService(cfg.Auth.DevToken), nil
	}
	return nil, fmt.Errorf("auth.jwks_url is required unless auth.dev_bypass is set")
}
