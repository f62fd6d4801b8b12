package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stsysd/activitygrid/api"
	"github.com/stsysd/activitygrid/config"
	"github.com/stsysd/activitygrid/db"
	"github.com/stsysd/activitygrid/store"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serve board management and rendering endpoints. Requires ACTIVITYGRID_API_KEY.",
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.APIKey == "" {
				return errors.New("ACTIVITYGRID_API_KEY is not set")
			}

			// SQLiteストアの初期化（マイグレーション関数を渡す）
			sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
			if err != nil {
				return err
			}
			defer sqliteStore.Close()

			// サーバーの起動
			server := api.NewServer(sqliteStore, cfg)
			return server.Run(":" + cfg.Port)
		},
	}

	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	cmd.Flags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory of the board database")
	return cmd
}
