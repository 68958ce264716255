package serve

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voice2text/internal/api/server"
	"voice2text/internal/app"
	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/config"
)

var (
	host        string
	port        string
	environment string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "127.0.0.1", "address to bind")
	Cmd.Flags().StringVar(&port, "port", "8767", "port to listen on")
	Cmd.Flags().StringVar(&environment, "env", "development", "environment (development or production)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transcription HTTP API",
	Long: `Serve the transcription HTTP API.

Endpoints: POST /api/v1/transcriptions, GET /api/v1/transcriptions,
GET /api/v1/backends, GET /health, GET /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		envConfig, err := config.WorkerConfigFromEnv()
		if err != nil {
			log.Fatalf("Invalid environment configuration: %v\n", err)
		}
		workerConfig := stt_worker.Merge(stt_worker.DefaultConfig(), envConfig)

		dao := app.InitializeTranscriptionDAO()
		defer dao.Close()

		srv := server.NewServer(server.Config{
			Host:         host,
			Port:         port,
			ReadTimeout:  15 * time.Second,
			// Long write timeout: a capture request holds the connection
			// for the whole recording.
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  60 * time.Second,
			Environment:  environment,
		}, workerConfig, dao, logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				logger.Fatal("Server failed", zap.Error(err))
			}
		case sig := <-quit:
			logger.Info("Received signal", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Shutdown failed", zap.Error(err))
			}
		}
	},
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v\n", err)
	}
	return logger
}
