package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stsysd/activitygrid/heatmap"
	"github.com/stsysd/activitygrid/model"
)

// gridInstance はボードごとのグリッド状態です。イベントはメモリ上にのみ保持します。
type gridInstance struct {
	grid      *heatmap.Heatmap
	width     *heatmap.LiveWidth
	updatedAt time.Time
}

// registry はボードIDとグリッドインスタンスの対応を管理します。
type registry struct {
	mu    sync.Mutex
	items map[uuid.UUID]*gridInstance
	opts  []heatmap.Option
}

func newRegistry() *registry {
	return &registry{items: make(map[uuid.UUID]*gridInstance)}
}

// get はボードのインスタンスを返します。ボードが更新されていれば設定を反映します。
func (r *registry) get(board *model.Board) (*gridInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.items[board.ID]; ok {
		if !inst.updatedAt.Equal(board.UpdatedAt) {
			if err := inst.grid.SetConfig(board.GridConfig()); err != nil {
				return nil, err
			}
			inst.updatedAt = board.UpdatedAt
		}
		return inst, nil
	}

	width := &heatmap.LiveWidth{}
	opts := append([]heatmap.Option{heatmap.WithWidthProvider(width)}, r.opts...)
	grid, err := heatmap.New(board.GridConfig(), opts...)
	if err != nil {
		return nil, err
	}
	inst := &gridInstance{grid: grid, width: width, updatedAt: board.UpdatedAt}
	r.items[board.ID] = inst
	return inst, nil
}

// remove はボードのインスタンスを破棄します。
func (r *registry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}
