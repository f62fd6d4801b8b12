package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
)

// BoardIDParams represents parameters that only address a board.
type BoardIDParams struct {
	BoardID *model.BoardID
}

// NewBoardIDParams creates parameters from the board_id path value.
func NewBoardIDParams(r *http.Request) (*BoardIDParams, error) {
	boardID, err := model.NewBoardID(r.PathValue("board_id"))
	if err != nil {
		return nil, model.NewValidationError(fmt.Sprintf("invalid board_id: %v", err))
	}
	return &BoardIDParams{BoardID: boardID}, nil
}

// CreateBoardParams represents parameters for creating a board.
type CreateBoardParams struct {
	Name        *model.BoardName
	Description string
	Timezone    string
	Settings    heatmap.Config
}

// NewCreateBoardParams creates parameters for board creation from HTTP request.
// Settings omitted from the body keep their default values.
func NewCreateBoardParams(r *http.Request) (*CreateBoardParams, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, model.NewValidationError("Failed to read request body")
	}

	var requestBody struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Timezone    string          `json:"timezone"`
		Settings    json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(body, &requestBody); err != nil {
		return nil, model.NewValidationError("Invalid JSON format")
	}

	name, err := model.NewBoardName(requestBody.Name)
	if err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	settings := heatmap.DefaultConfig()
	if len(requestBody.Settings) > 0 {
		if err := json.Unmarshal(requestBody.Settings, &settings); err != nil {
			return nil, model.NewValidationError("Invalid settings format")
		}
	}

	return &CreateBoardParams{
		Name:        name,
		Description: requestBody.Description,
		Timezone:    requestBody.Timezone,
		Settings:    settings,
	}, nil
}

// handleCreateBoard はボード作成をハンドリングします。
func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewCreateBoardParams(r)
	if err != nil {
		writeError(w, err, "Failed to create board")
		return
	}

	// ボードの作成
	board, err := model.NewBoard(params.Name.String(), params.Description, params.Settings, params.Timezone)
	if err != nil {
		if isGridError(err) {
			writeError(w, err, "Failed to create board")
			return
		}
		writeJSONError(w, fmt.Sprintf("Invalid board data: %v", err), http.StatusBadRequest)
		return
	}

	// データベースに保存
	if err := s.store.CreateBoard(r.Context(), board); err != nil {
		writeError(w, err, "Failed to create board")
		return
	}

	writeJSON(w, http.StatusCreated, board)
}

// handleGetBoard はボード取得をハンドリングします。
func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	params, err := NewBoardIDParams(r)
	if err != nil {
		writeError(w, err, "Failed to retrieve board")
		return
	}

	board, err := s.store.GetBoard(r.Context(), params.BoardID.UUID())
	if err != nil {
		writeError(w, err, "Failed to retrieve board")
		return
	}

	writeJSON(w, http.StatusOK, board)
}

// ListBoardsResponse はボード一覧取得のレスポンスです。
type ListBoardsResponse struct {
	Items []*model.Board `json:"items"`
}

// handleListBoards はボード一覧取得をハンドリングします。
func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pagination, err := model.NewPagination(query.Get("limit"), query.Get("offset"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	boards, err := s.store.ListBoards(r.Context(), pagination)
	if err != nil {
		writeError(w, err, "Failed to retrieve boards")
		return
	}

	writeJSON(w, http.StatusOK, &ListBoardsResponse{Items: boards})
}

// handleUpdateBoard はボード更新をハンドリングします。
// settings は既存の設定に上書きマージされます。
func (s *Server) handleUpdateBoard(w http.ResponseWriter, r *http.Request) {
	params, err := NewBoardIDParams(r)
	if err != nil {
		writeError(w, err, "Failed to update board")
		return
	}

	// 既存ボードの取得
	board, err := s.store.GetBoard(r.Context(), params.BoardID.UUID())
	if err != nil {
		writeError(w, err, "Failed to update board")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	// JSONのパース（部分更新をサポートするためポインタ型を使用）
	var updateData struct {
		Name        *string         `json:"name"`
		Description *string         `json:"description"`
		Timezone    *string         `json:"timezone"`
		Settings    json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(body, &updateData); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if updateData.Name != nil {
		name, err := model.NewBoardName(*updateData.Name)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		board.Name = name.String()
	}
	if updateData.Description != nil {
		board.Description = *updateData.Description
	}
	if updateData.Timezone != nil {
		board.Timezone = *updateData.Timezone
	}
	if len(updateData.Settings) > 0 {
		if err := json.Unmarshal(updateData.Settings, &board.Settings); err != nil {
			writeJSONError(w, "Invalid settings format", http.StatusBadRequest)
			return
		}
	}
	board.UpdatedAt = time.Now()

	// バリデーション
	if err := board.Validate(); err != nil {
		if isGridError(err) {
			writeError(w, err, "Failed to update board")
			return
		}
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// データベースに保存
	if err := s.store.UpdateBoard(r.Context(), board); err != nil {
		writeError(w, err, "Failed to update board")
		return
	}

	writeJSON(w, http.StatusOK, board)
}

// handleDeleteBoard はボード削除をハンドリングします。
func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	params, err := NewBoardIDParams(r)
	if err != nil {
		writeError(w, err, "Failed to delete board")
		return
	}

	s.grids.remove(params.BoardID.UUID())

	// べき等性：既に存在しない場合もエラーにしない
	if err := s.store.DeleteBoard(r.Context(), params.BoardID.UUID()); err != nil && !isNotFound(err) {
		writeError(w, err, "Failed to delete board")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
