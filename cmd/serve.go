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

	"github.com/ziadkadry99/cinematch/internal/db"
	"github.com/ziadkadry99/cinematch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP recommendation server",
	Long: `Loads the catalog, builds the index, and serves recommendations over
HTTP. Repeated identical queries are answered from a SQLite-backed
cache; the cache is invalidated on every start since the catalog may
have changed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default from config)")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	serveCmd.Flags().Bool("no-cache", false, "disable the recommendation cache")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	eng, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	var cache *db.DB
	if !noCache {
		cache, err = db.Open(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer cache.Close()

		// Cached payloads refer to whatever snapshot was loaded last.
		if err := cache.InvalidateCache(); err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: allowAll || cfg.Server.AllowAllOrigins,
	}, eng, cache)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
