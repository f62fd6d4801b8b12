// Package api はactivitygridのAPIサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/stsysd/activitygrid/config"
	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
	"github.com/stsysd/activitygrid/store"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router *http.ServeMux
	store  store.BoardStore
	config *config.Config
	grids  *registry
}

// Option はServerの設定を変更します。
type Option func(*Server)

// WithGridOptions は各ボードのグリッド生成時に渡すオプションを設定します。
func WithGridOptions(opts ...heatmap.Option) Option {
	return func(s *Server) {
		s.grids.opts = append(s.grids.opts, opts...)
	}
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// writeError はエラーの種類に応じたステータスコードでエラーを返却します。
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSONError(w, verr.Message, http.StatusBadRequest)
	case errors.Is(err, model.ErrBoardNotFound):
		writeJSONError(w, "Board not found", http.StatusNotFound)
	case isGridError(err):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("%s: %v", fallback, err)
		writeJSONError(w, fallback, http.StatusInternalServerError)
	}
}

// isGridError はグリッドの入力不備によるエラーかを判定します。
func isGridError(err error) bool {
	return errors.Is(err, heatmap.ErrInvalidEventTimestamp) ||
		errors.Is(err, heatmap.ErrInvalidLayoutGeometry) ||
		errors.Is(err, heatmap.ErrUnsupportedWeekStartDay) ||
		errors.Is(err, heatmap.ErrInvalidColor)
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrBoardNotFound)
}

// writeJSON はJSONレスポンスを返却します。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(store store.BoardStore, config *config.Config, opts ...Option) *Server {
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
		grids:  newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Board endpoints
	securedHandler.HandleFunc("GET /api/v0/b", s.handleListBoards)
	securedHandler.HandleFunc("POST /api/v0/b", s.handleCreateBoard)
	securedHandler.HandleFunc("GET /api/v0/b/{board_id}", s.handleGetBoard)
	securedHandler.HandleFunc("PUT /api/v0/b/{board_id}", s.handleUpdateBoard)
	securedHandler.HandleFunc("DELETE /api/v0/b/{board_id}", s.handleDeleteBoard)

	// Activity events
	securedHandler.HandleFunc("POST /api/v0/b/{board_id}/events", s.handleSetEvents)

	// Stateless rendering
	securedHandler.HandleFunc("POST /api/v0/preview", s.handlePreview)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))

	// Graph endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /b/{board_id}/graph.svg", s.handleGetGraph)
	s.router.HandleFunc("GET /b/{board_id}/graph", s.handleGetGraph)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run はサーバーを指定されたアドレスで起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s)
}
