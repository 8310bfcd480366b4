package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sovscan/config"
	"sovscan/server"
	"sovscan/store"
	"sovscan/util"
)

var (
	listenAddr string
	dbPath     string
	noDB       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	Long: `Starts an HTTP server exposing POST /analyze, GET /history, and
GET /healthz. Completed analyses are archived in SQLite and repeated
requests for the same site are served from cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		var st *store.Store
		if !noDB {
			var err error
			st, err = store.Open(cfg.DBPath)
			if err != nil {
				util.Fatal("Failed to open database: %v", err)
			}
			defer st.Close()
		}

		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           server.New(buildAnalyzer(cfg), st, cfg.CacheMaxAge, config.Version).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			util.Info("Listening on %s", cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				util.Fatal("Server failed: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		util.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			util.Warn("Graceful shutdown failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DB_PATH)")
	serveCmd.Flags().BoolVar(&noDB, "no-db", false, "Disable the analysis archive and cache")
	rootCmd.AddCommand(serveCmd)
}
