package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/api"
	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		mongoURI  string
		mongoDB   string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

Without flags the server keeps manifests in memory and computes every
layout fresh. Point --mongo at a MongoDB instance to persist manifests,
and --redis at a Redis instance to share the layout cache between
replicas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, mongoURI, mongoDB, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for the manifest store (default: in-memory)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the layout cache (default: no cache)")

	return cmd
}

// runServe assembles the store and cache backends and serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, mongoURI, mongoDB, redisAddr string) error {
	st, err := newStore(ctx, mongoURI, mongoDB)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	ca, err := newServeCache(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer ca.Close()

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(st, ca, c.Logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// newStore picks the manifest store backend: MongoDB when a URI is given,
// otherwise in-memory.
func newStore(ctx context.Context, mongoURI, mongoDB string) (store.Store, error) {
	if mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, mongoURI, mongoDB)
}

// newServeCache picks the layout cache backend: Redis when an address is
// given, otherwise no caching.
func newServeCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewRedisCache(ctx, redisAddr)
}
