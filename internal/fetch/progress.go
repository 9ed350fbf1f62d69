package fetch

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
)

// progressMeter renders a download progress bar as bytes flow through
// it. Rendering is throttled and happens inline on the copy path; there
// is no background goroutine.
type progressMeter struct {
	out      io.Writer
	bar      progress.Model
	total    int64
	written  int64
	lastDraw time.Time
}

func newProgressMeter(out io.Writer, total int64) *progressMeter {
	return &progressMeter{
		out:   out,
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (m *progressMeter) Write(p []byte) (int, error) {
	m.written += int64(len(p))
	// Unknown content length, nothing sensible to draw
	if m.total <= 0 {
		return len(p), nil
	}
	if time.Since(m.lastDraw) >= 100*time.Millisecond {
		m.draw()
	}
	return len(p), nil
}

// Finish draws the completed bar and terminates the progress line.
func (m *progressMeter) Finish() {
	if m.total <= 0 {
		return
	}
	m.draw()
	fmt.Fprintln(m.out)
}

func (m *progressMeter) draw() {
	frac := float64(m.written) / float64(m.total)
	if frac > 1 {
		frac = 1
	}
	fmt.Fprintf(m.out, "\r%s", m.bar.ViewAs(frac))
	m.lastDraw = time.Now()
}
