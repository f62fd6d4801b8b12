// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stsysd/activitygrid/heatmap"
)

// Board は名前付きのグリッド設定を表すモデルです。
// アクティビティデータ自体は永続化しません。
type Board struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`        // ボード名
	Description string         `json:"description"` // ボードの説明
	Settings    heatmap.Config `json:"settings"`    // グリッド設定
	Timezone    string         `json:"timezone"`    // 日付の区切りに使うタイムゾーン (IANA)
	CreatedAt   time.Time      `json:"created_at"`  // 作成日時
	UpdatedAt   time.Time      `json:"updated_at"`  // 更新日時
}

// NewBoard は新しいBoardインスタンスを作成します。
func NewBoard(name, description string, settings heatmap.Config, timezone string) (*Board, error) {
	now := time.Now()
	b := &Board{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Settings:    settings,
		Timezone:    timezone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadBoard は既存のBoardインスタンスを作成します。
func LoadBoard(id uuid.UUID, name, description string, settings heatmap.Config, timezone string, createdAt, updatedAt time.Time) (*Board, error) {
	b := &Board{
		ID:          id,
		Name:        name,
		Description: description,
		Settings:    settings,
		Timezone:    timezone,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate はボードのデータバリデーションを行います。
func (b *Board) Validate() error {
	if b.ID == uuid.Nil {
		return errors.New("id is required")
	}
	if b.Name == "" {
		return errors.New("name is required")
	}
	if _, err := loadLocation(b.Timezone); err != nil {
		return err
	}
	if err := b.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if b.CreatedAt.IsZero() {
		return errors.New("created_at is required")
	}
	if b.UpdatedAt.IsZero() {
		return errors.New("updated_at is required")
	}
	return nil
}

// GridConfig はタイムゾーンを反映したグリッド設定を返します。
func (b *Board) GridConfig() heatmap.Config {
	cfg := b.Settings
	// Validate 済みなのでエラーにはならない
	cfg.Location, _ = loadLocation(b.Timezone)
	return cfg
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q", name)
	}
	return loc, nil
}
