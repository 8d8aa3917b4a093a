package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bathroom-designer/internal/common/config"
	"bathroom-designer/internal/designer/repository"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ============================================================
// Bathroom Designer Service
// ============================================================

var v = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "designer",
	Short: "Bathroom design HTTP service",
	Long: `designer serves the bathroom design API: rooms with walls, fixtures,
windows, doors and ventilation, plus the built-in design theme catalog.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("port", "", "listen port (env PORT, default 8000)")
	flags.String("store", "", "room store backend: memory or sqlite (env STORE)")
	flags.String("sqlite-dsn", "", "sqlite database path or DSN (env SQLITE_DSN)")

	_ = v.BindPFlag("port", flags.Lookup("port"))
	_ = v.BindPFlag("store", flags.Lookup("store"))
	_ = v.BindPFlag("sqlite_dsn", flags.Lookup("sqlite-dsn"))
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.FromViper(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	app := newApp(cfg, store)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Bathroom Designer on %s (env: %s, store: %s)", addr, cfg.Environment, cfg.Store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[DESIGNER] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// openStore выбирает хранилище комнат по конфигурации.
func openStore(ctx context.Context, cfg *config.Config) (repository.RoomStore, func(), error) {
	if cfg.Store == config.StoreMemory {
		return repository.NewMemoryStore(), func() {}, nil
	}

	db, err := repository.OpenSQLite(cfg.SQLiteDSN)
	if err != nil {
		return nil, nil, err
	}
	store, err := repository.NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, closeDB(db), nil
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Printf("[DESIGNER] close sqlite: %v", err)
		}
	}
}
