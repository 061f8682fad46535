package display

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress is an inline counter for long scans. A disabled Progress (not a
// TTY, or verbose output requested) ignores every call, so callers never
// branch on it.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a bar of total steps written to w, or a no-op
// Progress when enabled is false.
func NewProgress(w io.Writer, total int, label string, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
	return &Progress{bar: bar}
}

// Step advances the bar by one.
func (p *Progress) Step() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Clear erases the bar so a log line can be printed; the next Step redraws it.
func (p *Progress) Clear() {
	if p.bar != nil {
		_ = p.bar.Clear()
	}
}

// Finish completes and erases the bar.
func (p *Progress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
