package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgrid/internal/server"
	"github.com/matzehuels/qrgrid/pkg/cache"
	"github.com/matzehuels/qrgrid/pkg/config"
	"github.com/matzehuels/qrgrid/pkg/pipeline"
)

// connectTimeout bounds the initial Redis or MongoDB handshake.
const connectTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisURL, mongoURI string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered QR codes over HTTP",
		Long: `Serve rendered QR codes over HTTP.

  GET /qr.svg?data=hello&dot=%231d4ed8&dot_radius=1rem
  GET /qr.png?data=hello&preset=soft&scale=8
  GET /presets
  GET /healthz

Artifacts are cached in Redis when --redis-url (or [server] redis_url) is
set, in MongoDB when --mongo-uri is set, and in the local cache directory
otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("redis-url") {
				cfg.Server.RedisURL = redisURL
			}
			if flags.Changed("mongo-uri") {
				cfg.Server.MongoURI = mongoURI
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the shared artifact cache")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for the shared artifact cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	store, keyer, err := c.serverCache(ctx, cfg.Server)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	if cfg.Server.CacheTTL > 0 {
		runner.TTL = cfg.Server.CacheTTL
	}
	defer runner.Close()

	printSuccess("Serving on %s", StyleLink.Render("http://"+displayAddr(cfg.Server.Addr)))
	printKeyValue("Presets", fmt.Sprint(cfg.PresetNames()))

	srv := server.New(runner, cfg, c.Logger)
	err = srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serverCache picks the artifact store: Redis, then MongoDB, then the local
// directory. Shared stores get keys scoped by the configured prefix.
func (c *CLI) serverCache(ctx context.Context, sc config.Server) (cache.Cache, cache.Keyer, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch {
	case sc.RedisURL != "":
		rc, err := cache.NewRedisCache(ctx, sc.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		printKeyValue("Cache", "redis")
		return rc, cache.NewScopedKeyer(nil, sc.KeyPrefix), nil
	case sc.MongoURI != "":
		mc, err := cache.NewMongoCache(ctx, sc.MongoURI, sc.MongoDatabase, "artifacts")
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}
		printKeyValue("Cache", "mongodb")
		return mc, cache.NewScopedKeyer(nil, sc.KeyPrefix), nil
	}

	fc, err := c.newCache(false)
	if err != nil {
		printWarning("Cache disabled: %v", err)
		return cache.NewNullCache(), nil, nil
	}
	printKeyValue("Cache", "local")
	return fc, nil, nil
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
