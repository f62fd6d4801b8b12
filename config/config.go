// Package config はアプリケーション設定を管理します。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/stsysd/activitygrid/heatmap"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// HTTPサーバーのポート
	Port string

	// API認証キー
	APIKey string

	// デバッグログの出力
	Debug bool
}

// NewConfig は環境変数から設定を読み込み、Configインスタンスを生成します。
// カレントディレクトリに .env があれば先に読み込みます（既存の環境変数は上書きしません）。
func NewConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir: getEnv("ACTIVITYGRID_DATA_DIR", filepath.Join(".", "data")),
		Port:    getEnv("ACTIVITYGRID_SERVER_PORT", "8080"),
		APIKey:  os.Getenv("ACTIVITYGRID_API_KEY"),
		Debug:   os.Getenv("ACTIVITYGRID_DEBUG") != "",
	}
}

// getEnv は環境変数を取得し、未設定の場合はデフォルト値を返します。
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GridFile はグリッド設定ファイルの内容です。
type GridFile struct {
	Grid     heatmap.Config `yaml:"grid"`
	Timezone string         `yaml:"timezone"`
	Title    string         `yaml:"title"`
}

// LoadGridFile はYAMLのグリッド設定を読み込みます。
// ファイルに書かれていない項目はデフォルト値のままです。
func LoadGridFile(path string) (*GridFile, error) {
	f := &GridFile{Grid: heatmap.DefaultConfig()}
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, err)
	}

	if f.Timezone != "" {
		loc, err := time.LoadLocation(f.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", f.Timezone, err)
		}
		f.Grid.Location = loc
	}

	if err := f.Grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid file %s: %w", path, err)
	}
	return f, nil
}
