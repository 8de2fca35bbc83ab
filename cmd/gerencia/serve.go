package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/ougirez/gerencia/internal/api"
	"github.com/ougirez/gerencia/internal/config"
	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/logger"
	"github.com/ougirez/gerencia/internal/pkg/store"
	"github.com/ougirez/gerencia/internal/pkg/store/xpgx"
	"github.com/ougirez/gerencia/internal/pkg/store/xsql"
)

const (
	connectInterval = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the read-only reporting API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openStore(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer s.Close()

		svc, err := api.NewAPIService(s, api.Options{
			CORSOrigins: cfg.Server.CORSOrigins,
			CoverageCap: cfg.Dashboard.CoverageCap,
		})
		if err != nil {
			return fmt.Errorf("api.NewAPIService: %w", err)
		}

		go svc.Serve(cfg.Server.Addr())
		logger.Infof(ctx, "listening on %s (%s)", cfg.Server.Addr(), cfg.App.Env)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = svc.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("svc.Shutdown: %w", err)
		}
		logger.Info(shutdownCtx, "server stopped")
		return nil
	},
}

func openStore(ctx context.Context, db config.Database) (*store.Store, error) {
	var pool store.Pool
	switch db.Driver {
	case constants.DriverSQLite:
		sqlite, err := xsql.Open(db.DataSource())
		if err != nil {
			return nil, fmt.Errorf("xsql.Open: %w", err)
		}
		if db.InitScript != "" {
			script, err := os.ReadFile(db.InitScript)
			if err != nil {
				sqlite.Close()
				return nil, fmt.Errorf("read init script: %w", err)
			}
			if err = sqlite.ExecScript(ctx, string(script)); err != nil {
				sqlite.Close()
				return nil, fmt.Errorf("sqlite.ExecScript: %w", err)
			}
		}
		pool = sqlite
	default:
		pg, err := xpgx.NewPool(ctx, db.DataSource())
		if err != nil {
			return nil, fmt.Errorf("xpgx.NewPool: %w", err)
		}
		pool = pg
	}

	s := store.NewStore(pool, db.Schema)
	err := backoff.Retry(
		func() error {
			pingErr := s.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "database not ready: %v", pingErr)
			}
			return pingErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(connectInterval), db.ConnectRetries),
			ctx,
		),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}
	return s, nil
}
