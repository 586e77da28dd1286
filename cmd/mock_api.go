package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internalApp "github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/mockapi"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type mockAPIFlags struct {
	config string
	listen string
	debug  bool
}

// newMockAPIServer 按配置创建本地开发用的 GraphQL 后端
func newMockAPIServer(cfg mockapi.Config, lg *zap.Logger, debug bool) (*http.Server, func(), error) {
	db, err := mockapi.NewDBEngine(cfg.Database, debug)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	store, err := mockapi.NewStore(db)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return &http.Server{
		Addr:              cfg.Listen,
		Handler:           mockapi.NewServer(cfg, store, lg).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}, closeDB, nil
}

func init() {
	flags := new(mockAPIFlags)

	var mockAPICommand = &cobra.Command{
		Use:   "mock-api [-c config_file] [-l listen]",
		Short: "Run a local GraphQL backend for development // 运行本地开发用的 GraphQL 后端",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := resolveConfigFile(flags.config)
			if err != nil {
				return err
			}

			cfg, _, err := internalApp.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if len(flags.listen) > 0 {
				cfg.MockAPI.Listen = flags.listen
			}

			if !flags.debug {
				gin.SetMode(gin.ReleaseMode)
			}

			lg, err := logger.NewLogger(logger.Config{Level: cfg.Log.Level, Production: cfg.Log.Production})
			if err != nil {
				return err
			}
			defer lg.Sync()

			srv, closeDB, err := newMockAPIServer(cfg.MockAPI, lg, flags.debug)
			if err != nil {
				return fmt.Errorf("mock-api: %w", err)
			}
			defer closeDB()

			errChan := make(chan error, 1)
			go func() {
				errChan <- srv.ListenAndServe()
			}()
			lg.Warn("mock api listening",
				zap.String("listen", cfg.MockAPI.Listen),
				zap.String("database", cfg.MockAPI.Database.Type))

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errChan:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-quit:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					lg.Error("mock api shutdown error", zap.Error(err))
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(mockAPICommand)
	fs := mockAPICommand.Flags()
	fs.StringVarP(&flags.config, "config", "c", "", "config file")
	fs.StringVarP(&flags.listen, "listen", "l", "", "listen address, overrides mock-api.listen")
	fs.BoolVar(&flags.debug, "debug", false, "log SQL statements")
}
