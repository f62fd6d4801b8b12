// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stsysd/activitygrid/db"
	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
)

// BoardStore はボードの保存と取得を行うインターフェースです。
type BoardStore interface {
	// CreateBoard は新しいボードを作成します。
	CreateBoard(ctx context.Context, board *model.Board) error
	// GetBoard は指定されたIDのボードを取得します。
	GetBoard(ctx context.Context, id uuid.UUID) (*model.Board, error)
	// UpdateBoard は指定されたボードを更新します。
	UpdateBoard(ctx context.Context, board *model.Board) error
	// DeleteBoard は指定されたIDのボードを削除します。
	DeleteBoard(ctx context.Context, id uuid.UUID) error
	// ListBoards はボードを更新日時の新しい順に取得します。
	ListBoards(ctx context.Context, pagination *model.Pagination) ([]*model.Board, error)
	// Close はストアの接続を閉じます。
	Close() error
}

// MigrateFunc はデータベースのスキーマを準備する関数です。
type MigrateFunc func(conn *sql.DB) error

// SQLiteStore はSQLiteを使用したBoardStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate MigrateFunc) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "activitygrid.db")

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// CreateBoard は新しいボードをデータベースに保存します。
func (s *SQLiteStore) CreateBoard(ctx context.Context, board *model.Board) error {
	// バリデーション
	if err := board.Validate(); err != nil {
		return err
	}

	settings, err := json.Marshal(board.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	// sqlcで生成されたクエリを使用
	err = s.queries.CreateBoard(ctx, db.CreateBoardParams{
		ID:          board.ID.String(),
		Name:        board.Name,
		Description: board.Description,
		Settings:    string(settings),
		Timezone:    board.Timezone,
		CreatedAt:   board.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   board.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	return nil
}

// GetBoard は指定されたIDのボードを取得します。
func (s *SQLiteStore) GetBoard(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	dbBoard, err := s.queries.GetBoard(ctx, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return loadBoard(dbBoard)
}

// UpdateBoard は指定されたボードを更新します。
func (s *SQLiteStore) UpdateBoard(ctx context.Context, board *model.Board) error {
	// バリデーション
	if err := board.Validate(); err != nil {
		return err
	}

	settings, err := json.Marshal(board.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	result, err := s.queries.UpdateBoard(ctx, db.UpdateBoardParams{
		Name:        board.Name,
		Description: board.Description,
		Settings:    string(settings),
		Timezone:    board.Timezone,
		UpdatedAt:   board.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ID:          board.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}

	// 更新された行数を確認
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return model.ErrBoardNotFound
	}

	return nil
}

// DeleteBoard は指定されたIDのボードを削除します。
func (s *SQLiteStore) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	result, err := s.queries.DeleteBoard(ctx, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return model.ErrBoardNotFound
	}

	return nil
}

// ListBoards はボードを更新日時の新しい順に取得します。
func (s *SQLiteStore) ListBoards(ctx context.Context, pagination *model.Pagination) ([]*model.Board, error) {
	dbBoards, err := s.queries.ListBoards(ctx, db.ListBoardsParams{
		Limit:  int64(pagination.Limit()),
		Offset: int64(pagination.Offset()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	// 結果の変換
	boards := make([]*model.Board, 0, len(dbBoards))
	for _, dbBoard := range dbBoards {
		board, err := loadBoard(dbBoard)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, nil
}

// loadBoard はDBの行をモデルに変換します。
func loadBoard(row db.Board) (*model.Board, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in database: %w", err)
	}

	// 保存後に追加された設定項目はデフォルト値で補う
	settings := heatmap.DefaultConfig()
	if err := json.Unmarshal([]byte(row.Settings), &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	// 文字列から時間に変換
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	board, err := model.LoadBoard(id, row.Name, row.Description, settings, row.Timezone, createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return board, nil
}
