package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
)

// svgOptions はボード表示用のSVGオプションです。
func svgOptions(title string) *heatmap.SVGOptions {
	return &heatmap.SVGOptions{
		FontSize:   10,
		FontFamily: "sans-serif",
		Title:      title,
	}
}

// writeGrid は指定された形式でグリッドを返却します。
func writeGrid(w http.ResponseWriter, grid *heatmap.Grid, format model.RenderFormat, title string) {
	if format == model.FormatSVG {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(heatmap.RenderSVG(grid, svgOptions(title))))
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

// GraphParams represents parameters for rendering a board.
type GraphParams struct {
	BoardID *model.BoardID
	Width   *model.Width
	Format  model.RenderFormat
	// Languages are locale preferences, most preferred first.
	Languages []string
}

// NewGraphParams creates parameters for board rendering from HTTP request.
func NewGraphParams(r *http.Request, defaultFormat model.RenderFormat) (*GraphParams, error) {
	boardID, err := model.NewBoardID(r.PathValue("board_id"))
	if err != nil {
		return nil, model.NewValidationError("invalid board_id: " + err.Error())
	}

	query := r.URL.Query()

	width, err := model.NewWidth(query.Get("width"))
	if err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	format := defaultFormat
	if query.Has("format") {
		format, err = model.NewRenderFormat(query.Get("format"))
		if err != nil {
			return nil, model.NewValidationError(err.Error())
		}
	}

	return &GraphParams{
		BoardID:   boardID,
		Width:     width,
		Format:    format,
		Languages: []string{query.Get("lang"), r.Header.Get("Accept-Language")},
	}, nil
}

// applyWidth は width をコンテナのリサイズ通知として反映します。
// 1列も収まらない幅はエラーを返し、共有のインスタンスには記録しません。
func applyWidth(inst *gridInstance, params *GraphParams) error {
	if !params.Width.Measured() {
		return nil
	}
	cfg := inst.grid.Config()
	if _, err := heatmap.WeekCount(params.Width.Int(), cfg.CellSize, cfg.CellGap); err != nil {
		return err
	}
	inst.width.Set(params.Width.Int())
	return nil
}

// boardLocale は lang パラメータ、Accept-Language、ボード設定の順でロケールを選びます。
func boardLocale(board *model.Board, params *GraphParams) heatmap.Locale {
	languages := append(params.Languages, board.Settings.Locale)
	return heatmap.LookupLocale(languages...)
}

// renderBoard はボードのグリッドを描画します。
func renderBoard(inst *gridInstance, board *model.Board, params *GraphParams) (*heatmap.Grid, error) {
	if err := applyWidth(inst, params); err != nil {
		return nil, err
	}
	return inst.grid.RenderLocale(boardLocale(board, params))
}

// handleGetGraph は指定ボードのヒートマップを生成・返却するハンドラーです。
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	params, err := NewGraphParams(r, model.FormatSVG)
	if err != nil {
		writeError(w, err, "Failed to render graph")
		return
	}

	board, err := s.store.GetBoard(r.Context(), params.BoardID.UUID())
	if err != nil {
		writeError(w, err, "Failed to render graph")
		return
	}

	inst, err := s.grids.get(board)
	if err != nil {
		writeError(w, err, "Failed to render graph")
		return
	}

	grid, err := renderBoard(inst, board, params)
	if err != nil {
		writeError(w, err, "Failed to render graph")
		return
	}

	writeGrid(w, grid, params.Format, board.Name)
}

// handleSetEvents はボードのアクティビティイベントを置き換え、再描画結果を返します。
func (s *Server) handleSetEvents(w http.ResponseWriter, r *http.Request) {
	params, err := NewGraphParams(r, model.FormatJSON)
	if err != nil {
		writeError(w, err, "Failed to set events")
		return
	}

	board, err := s.store.GetBoard(r.Context(), params.BoardID.UUID())
	if err != nil {
		writeError(w, err, "Failed to set events")
		return
	}

	var requestBody struct {
		Events []string `json:"events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// 不正なタイムスタンプがあれば状態を変更せずに拒否する
	events, err := model.NewEvents(requestBody.Events, board.GridConfig().Location)
	if err != nil {
		writeError(w, err, "Failed to set events")
		return
	}

	inst, err := s.grids.get(board)
	if err != nil {
		writeError(w, err, "Failed to set events")
		return
	}
	if err := applyWidth(inst, params); err != nil {
		writeError(w, err, "Failed to set events")
		return
	}

	// 差し替えと描画を一度に行い、このデータ変更のフェードを応答に含める
	grid, err := inst.grid.SetEventsAndRender(events.Values(), boardLocale(board, params))
	if err != nil {
		writeError(w, err, "Failed to set events")
		return
	}

	writeGrid(w, grid, params.Format, board.Name)
}

// PreviewRequest はステートレス描画のリクエストです。
type PreviewRequest struct {
	Settings json.RawMessage `json:"settings"`
	Events   []string        `json:"events"`
	Timezone string          `json:"timezone"`
	Width    int             `json:"width"`
	Now      string          `json:"now"`
}

// handlePreview は保存されていない設定とイベントからグリッドを描画します。
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	format, err := model.NewRenderFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	var req PreviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSONError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	settings := heatmap.DefaultConfig()
	if len(req.Settings) > 0 {
		if err := json.Unmarshal(req.Settings, &settings); err != nil {
			writeJSONError(w, "Invalid settings format", http.StatusBadRequest)
			return
		}
	}

	// ボードと同じ規則でタイムゾーンを検証する
	board, err := model.NewBoard("preview", "", settings, req.Timezone)
	if err != nil {
		if isGridError(err) {
			writeError(w, err, "Failed to render preview")
			return
		}
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg := board.GridConfig()

	opts := append([]heatmap.Option{}, s.grids.opts...)
	opts = append(opts,
		heatmap.WithEvents(req.Events),
		heatmap.WithWidthProvider(heatmap.StaticWidth(req.Width)),
	)
	if req.Now != "" {
		now, err := heatmap.ParseEventTime(req.Now, cfg.Location)
		if err != nil {
			writeJSONError(w, "invalid now: "+err.Error(), http.StatusBadRequest)
			return
		}
		opts = append(opts, heatmap.WithClock(func() time.Time { return now }))
	}

	h, err := heatmap.New(cfg, opts...)
	if err != nil {
		writeError(w, err, "Failed to render preview")
		return
	}
	grid, err := h.RenderLocale(heatmap.LookupLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), cfg.Locale))
	if err != nil {
		writeError(w, err, "Failed to render preview")
		return
	}

	writeGrid(w, grid, format, "")
}
