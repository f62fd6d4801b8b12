package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stsysd/activitygrid/db"
	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// テスト用のSQLiteストアを初期化
	store, err := NewSQLiteStore(t.TempDir(), db.Migrate)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newTestBoard(t *testing.T, name string) *model.Board {
	t.Helper()
	cfg := heatmap.DefaultConfig()
	cfg.WeekStart = heatmap.Sunday
	cfg.ActiveColor = "#0044aa"
	board, err := model.NewBoard(name, name+" description", cfg, "UTC")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board
}

func defaultPagination(t *testing.T) *model.Pagination {
	t.Helper()
	p, err := model.NewPagination("", "")
	if err != nil {
		t.Fatalf("Failed to create pagination: %v", err)
	}
	return p
}

func TestCreateAndGetBoard(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	board := newTestBoard(t, "commits")
	if err := store.CreateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	got, err := store.GetBoard(ctx, board.ID)
	if err != nil {
		t.Fatalf("Failed to get board: %v", err)
	}

	// 取得したボードが元のボードと一致することを確認
	if got.ID != board.ID || got.Name != board.Name || got.Description != board.Description {
		t.Errorf("Expected %+v, got %+v", board, got)
	}
	if got.Settings != board.Settings {
		t.Errorf("Expected settings %+v, got %+v", board.Settings, got.Settings)
	}
	if got.Timezone != "UTC" {
		t.Errorf("Expected timezone UTC, got %s", got.Timezone)
	}
	if !got.CreatedAt.Equal(board.CreatedAt) {
		t.Errorf("Expected CreatedAt %v, got %v", board.CreatedAt, got.CreatedAt)
	}
}

func TestGetBoardNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetBoard(context.Background(), uuid.New())
	if !errors.Is(err, model.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestUpdateBoard(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	board := newTestBoard(t, "commits")
	if err := store.CreateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board.Name = "reviews"
	board.Settings.Legend = false
	board.Settings.CellSize = 10
	board.UpdatedAt = board.UpdatedAt.Add(time.Minute)
	if err := store.UpdateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to update board: %v", err)
	}

	got, err := store.GetBoard(ctx, board.ID)
	if err != nil {
		t.Fatalf("Failed to get board: %v", err)
	}
	if got.Name != "reviews" || got.Settings.Legend || got.Settings.CellSize != 10 {
		t.Errorf("Update not applied: %+v", got)
	}
	if !got.UpdatedAt.Equal(board.UpdatedAt) {
		t.Errorf("Expected UpdatedAt %v, got %v", board.UpdatedAt, got.UpdatedAt)
	}

	// 存在しないボードの更新
	missing := newTestBoard(t, "missing")
	if err := store.UpdateBoard(ctx, missing); !errors.Is(err, model.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestUpdateBoardRejectsInvalidSettings(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	board := newTestBoard(t, "commits")
	if err := store.CreateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board.Settings.InactiveColor = "gray"
	if err := store.UpdateBoard(ctx, board); !errors.Is(err, heatmap.ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
}

func TestDeleteBoard(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	board := newTestBoard(t, "commits")
	if err := store.CreateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	if err := store.DeleteBoard(ctx, board.ID); err != nil {
		t.Fatalf("Failed to delete board: %v", err)
	}
	if _, err := store.GetBoard(ctx, board.ID); !errors.Is(err, model.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound after delete, got %v", err)
	}
	if err := store.DeleteBoard(ctx, board.ID); !errors.Is(err, model.ErrBoardNotFound) {
		t.Errorf("Expected ErrBoardNotFound on second delete, got %v", err)
	}
}

func TestListBoards(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)
	names := []string{"a", "b", "c"}
	for i, name := range names {
		board := newTestBoard(t, name)
		board.UpdatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := store.CreateBoard(ctx, board); err != nil {
			t.Fatalf("Failed to create board: %v", err)
		}
	}

	boards, err := store.ListBoards(ctx, defaultPagination(t))
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if len(boards) != 3 {
		t.Fatalf("Expected 3 boards, got %d", len(boards))
	}
	// 更新日時の新しい順
	for i, want := range []string{"c", "b", "a"} {
		if boards[i].Name != want {
			t.Errorf("boards[%d] = %s, want %s", i, boards[i].Name, want)
		}
	}

	page, err := model.NewPagination("1", "1")
	if err != nil {
		t.Fatalf("Failed to create pagination: %v", err)
	}
	boards, err = store.ListBoards(ctx, page)
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "b" {
		t.Errorf("Expected [b], got %v", boards)
	}
}

func TestListBoardsEmpty(t *testing.T) {
	store := setupTestStore(t)

	boards, err := store.ListBoards(context.Background(), defaultPagination(t))
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if boards == nil || len(boards) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", boards)
	}
}
