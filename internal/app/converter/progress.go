package converter

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls the batch progress display.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressManager wraps an mpb container; disabled it is a no-op, so the
// converter never has to branch on TTY concerns.
type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
}

// ProgressBar is one bar in the container, also no-op when disabled.
type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(cfg ProgressConfig) *ProgressManager {
	if !cfg.Enabled {
		return &ProgressManager{}
	}

	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &ProgressManager{
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		enabled: true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled {
		return &ProgressBar{}
	}

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" "),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO, decor.WCSyncWidth), " done"),
		),
	)
	return &ProgressBar{bar: bar, enabled: true}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled {
		pb.bar.Increment()
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled {
		pm.container.Wait()
	}
}

// ShouldShowProgress reports whether stderr is a terminal, unless forced.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
