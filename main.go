// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/stsysd/activitygrid/config"
)

func main() {
	// 設定の読み込み
	cfg := config.NewConfig()

	if cfg.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	root := &cobra.Command{
		Use:           "activitygrid",
		Short:         "activitygrid renders GitHub-style activity heatmaps.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newServeCommand(cfg))
	root.AddCommand(newRenderCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
