package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-dian-tian/graphwalk/internal/api"
	"github.com/you-dian-tian/graphwalk/pkg/analyze"
	"github.com/you-dian-tian/graphwalk/pkg/cache"
	"github.com/you-dian-tian/graphwalk/pkg/store"
)

// shutdownTimeout bounds graceful shutdown after the context ends.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the HTTP API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redis    string
		mongoURI string
		mongoDB  string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph analysis HTTP API",
		Long: `Serve the graph analysis HTTP API.

POST /reports accepts a plain text edge list and returns a stored
analysis report; GET /reports/{id} fetches one back. Reports are kept
in memory unless --mongo points at a MongoDB instance, and analysis
results are cached on disk unless --redis points at a Redis server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			if redis == "" {
				redis = c.Config.Serve.Redis
			}
			if mongoURI == "" {
				mongoURI = c.Config.Serve.MongoURI
			}
			if mongoDB == "" {
				mongoDB = c.Config.Serve.MongoDB
			}

			resultCache, err := c.serveCache(ctx, redis, noCache)
			if err != nil {
				return err
			}
			defer resultCache.Close()

			reportStore, err := c.serveStore(ctx, mongoURI, mongoDB)
			if err != nil {
				return err
			}
			defer reportStore.Close(context.Background())

			handlers := api.NewHandlers(analyze.NewRunner(resultCache, c.Logger), reportStore, c.Logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(handlers),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Infof("listening on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				c.Logger.Info("server stopped")
				return ctx.Err()
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the result cache (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for report storage")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name (default graphwalk)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

// serveCache picks the result cache backend: Redis when an address is
// given, the local file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
		}
		c.Logger.Debugf("caching results in redis at %s", redisAddr)
		return rc, nil
	}
	return c.newCache(false), nil
}

// serveStore picks the report store backend: MongoDB when a URI is
// given, in-memory otherwise.
func (c *CLI) serveStore(ctx context.Context, uri, db string) (store.Store, error) {
	if uri == "" {
		c.Logger.Debug("storing reports in memory")
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, uri, db)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Debugf("storing reports in mongodb database %s", db)
	return ms, nil
}
