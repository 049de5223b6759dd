package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"addressbook/cache"
	"addressbook/config"
	"addressbook/db"
	"addressbook/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	MAX_NUMBER_CACHED = 3
	shutdownTimeout   = 10 * time.Second
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the address books over HTTP",
	Long: `Starts an HTTP server over an empty directory.

Environment:
  ADDRESSBOOK_ADDR   listen address (default :8080)
  REDIS_URL          redis address for the activity log (in memory when unset)
  ELASTIC_URL        Elasticsearch URL for the search mirror (disabled when unset)
  ELASTIC_INDEX      index for the search mirror (default contacts)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
}

func newRequestCacher(redisConfig config.RedisConfig) (cache.RequestCacher, error) {
	maxNumber := redisConfig.MaxNumberCached
	if maxNumber <= 0 {
		maxNumber = MAX_NUMBER_CACHED
	}

	if redisConfig.URL == "" {
		logger.Info("activity log kept in memory")
		return cache.CreateMemoryCache(maxNumber), nil
	}

	client, err := config.SetupRedis(redisConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("activity log kept in redis", zap.String("addr", redisConfig.URL))
	return cache.CreateRedisCache(client, maxNumber), nil
}

func newContactIndex(elasticConfig config.ElasticConfig) (db.ContactIndex, error) {
	if elasticConfig.URL == "" {
		return db.NopContactIndex{}, nil
	}

	client, err := config.SetupElasticSearch(elasticConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("mirroring contacts to elasticsearch",
		zap.String("url", elasticConfig.URL),
		zap.String("index", elasticConfig.Index))
	return db.CreateElasticContactIndex(elasticConfig.Index, client), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Addr = addr
	}

	cacher, err := newRequestCacher(cfg.Redis)
	if err != nil {
		return err
	}
	index, err := newContactIndex(cfg.Elastic)
	if err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	server := service.NewServer(newDirectory(), cacher, index, logger)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.SetupRoutes(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logger.Info("listening", zap.String("addr", cfg.Addr))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
