package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/stsysd/activitygrid/config"
	"github.com/stsysd/activitygrid/heatmap"
)

type renderOptions struct {
	eventsPath string
	configPath string
	outPath    string
	format     string
	lang       string
	width      int
	weekStart  int
	watch      bool
}

func newRenderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a heatmap from an events file",
		Long: "Render a heatmap from a file of ISO-8601 timestamps (a JSON array or one per line).\n" +
			"With --watch the grid is re-rendered whenever the events or config file changes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("week-start") {
				opts.weekStart = -1
			}
			return runRender(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.eventsPath, "events", "e", "", "events file (required)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML grid config")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, term or json")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "label language (en, ja, uk)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "container width in px (default: config width)")
	cmd.Flags().IntVar(&opts.weekStart, "week-start", 0, "first day of week, 0=Monday .. 6=Sunday")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-render when the input files change")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

// renderer は1つのグリッドと出力先を保持します。
type renderer struct {
	opts  renderOptions
	grid  *heatmap.Heatmap
	title string
	w     io.Writer
}

func newRenderer(w io.Writer, opts renderOptions) (*renderer, error) {
	if !lo.Contains([]string{"svg", "term", "json"}, opts.format) {
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}

	cfg, title, err := loadRenderConfig(opts)
	if err != nil {
		return nil, err
	}
	events, err := readEvents(opts.eventsPath)
	if err != nil {
		return nil, err
	}

	grid, err := heatmap.New(cfg,
		heatmap.WithEvents(events),
		heatmap.WithWidthProvider(heatmap.StaticWidth(opts.width)),
	)
	if err != nil {
		return nil, err
	}
	return &renderer{opts: opts, grid: grid, title: title, w: w}, nil
}

// loadRenderConfig はYAML設定にコマンドラインの指定を重ねます。
func loadRenderConfig(opts renderOptions) (heatmap.Config, string, error) {
	f, err := config.LoadGridFile(opts.configPath)
	if err != nil {
		return heatmap.Config{}, "", err
	}
	cfg := f.Grid
	if opts.weekStart >= 0 {
		cfg.WeekStart = heatmap.WeekStart(opts.weekStart)
	}
	if opts.lang != "" {
		cfg.Locale = opts.lang
	}
	return cfg, f.Title, nil
}

// readEvents はJSON配列または1行1件のタイムスタンプを読み込みます。
// 空行と # で始まる行は無視します。
func readEvents(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "[") {
		var events []string
		if err := json.Unmarshal([]byte(text), &events); err != nil {
			return nil, fmt.Errorf("failed to parse events %s: %w", path, err)
		}
		return events, nil
	}

	lines := lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != "" && !strings.HasPrefix(line, "#")
	}), nil
}

// render は現在の状態を描画して出力します。
func (r *renderer) render() error {
	grid, err := r.grid.Render()
	if err != nil {
		return err
	}

	var out string
	switch r.opts.format {
	case "svg":
		out = heatmap.RenderSVG(grid, &heatmap.SVGOptions{Title: r.title}) + "\n"
	case "term":
		out = heatmap.RenderTerminal(grid)
	case "json":
		b, err := json.MarshalIndent(grid, "", "  ")
		if err != nil {
			return err
		}
		out = string(b) + "\n"
	}

	if r.opts.outPath != "" {
		return os.WriteFile(r.opts.outPath, []byte(out), 0644)
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// reloadEvents はイベントファイルを読み直します（データ変更としてフェードが付きます）。
func (r *renderer) reloadEvents() error {
	events, err := readEvents(r.opts.eventsPath)
	if err != nil {
		return err
	}
	r.grid.SetEvents(events)
	return nil
}

// reloadConfig は設定ファイルを読み直します（アニメーションは付きません）。
func (r *renderer) reloadConfig() error {
	cfg, title, err := loadRenderConfig(r.opts)
	if err != nil {
		return err
	}
	if err := r.grid.SetConfig(cfg); err != nil {
		return err
	}
	r.title = title
	return nil
}

func runRender(w io.Writer, opts renderOptions) error {
	r, err := newRenderer(w, opts)
	if err != nil {
		return err
	}
	if err := r.render(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return r.watch()
}

// watch は入力ファイルの変更を監視して再描画します。
// エディタの rename 保存に対応するため、ディレクトリ単位で監視します。
func (r *renderer) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := map[string]func() error{}
	targets[filepath.Clean(r.opts.eventsPath)] = r.reloadEvents
	if r.opts.configPath != "" {
		targets[filepath.Clean(r.opts.configPath)] = r.reloadConfig
	}

	dirs := lo.Uniq(lo.Map(lo.Keys(targets), func(p string, _ int) string {
		return filepath.Dir(p)
	}))
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload, ok := targets[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			if err := reload(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reloading %s: %v\n", event.Name, err)
				continue
			}
			if err := r.render(); err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
