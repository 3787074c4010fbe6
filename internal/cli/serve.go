package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Captainbleu/Boggle/internal/api"
	"github.com/Captainbleu/Boggle/internal/factory"
	"github.com/Captainbleu/Boggle/internal/language"
	redisstorage "github.com/Captainbleu/Boggle/internal/storage/redis"
)

// newServeCmd creates the serve command
func newServeCmd() *cobra.Command {
	var (
		port    int
		wordDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		Long: `Run the JSON API server. Dictionaries are loaded per language from
<word-dir>/<code>.txt (one word per line). Storage defaults to memory;
set STORAGE_TYPE=redis and REDIS_URL to persist sessions in Redis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, wordDir)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().StringVar(&wordDir, "word-dir", "data/words", "Directory with per-language word files")

	return cmd
}

func runServe(port int, wordDir string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Load a dictionary per bundled language; a missing file leaves
	// that language unavailable but the server still starts.
	for _, code := range language.Codes() {
		path := filepath.Join(wordDir, code+".txt")
		if err := app.DictionaryService.LoadFromFile(context.Background(), code, path); err != nil {
			logger.Warn("could not load dictionary",
				slog.String("language", code),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
