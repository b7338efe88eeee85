package progress

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ProgressBar shows how much of a finite drill has elapsed.
type ProgressBar struct {
	total       time.Duration
	current     time.Duration
	cues        uint64
	lastUpdate  time.Time
	output      io.Writer
	enabled     bool
	description string
}

// NewProgressBar creates a bar for a drill lasting total.
func NewProgressBar(total time.Duration, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		lastUpdate:  time.Now(),
		output:      os.Stderr, // Use stderr so it doesn't interfere with stdout
		enabled:     true,
		description: description,
	}
}

// SetOutput redirects rendering.
func (p *ProgressBar) SetOutput(w io.Writer) {
	p.output = w
}

// Disable disables the progress bar
func (p *ProgressBar) Disable() {
	p.enabled = false
}

// Enable enables the progress bar
func (p *ProgressBar) Enable() {
	p.enabled = true
}

// Set records the elapsed drill time and the number of cues shown so far.
func (p *ProgressBar) Set(elapsed time.Duration, cues uint64) {
	if elapsed > p.total {
		elapsed = p.total
	}
	p.current = elapsed
	p.cues = cues
	p.render()
}

func (p *ProgressBar) render() {
	if !p.enabled {
		return
	}

	// Throttle updates to avoid too much output
	now := time.Now()
	if now.Sub(p.lastUpdate) < 100*time.Millisecond && p.current < p.total {
		return
	}
	p.lastUpdate = now

	var percent float64
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total) * 100
	}

	barWidth := 40
	filled := int(float64(barWidth) * percent / 100)
	if filled > barWidth {
		filled = barWidth
	}

	bar := make([]byte, barWidth)
	for i := 0; i < filled; i++ {
		bar[i] = '='
	}
	if filled < barWidth {
		bar[filled] = '>'
		for i := filled + 1; i < barWidth; i++ {
			bar[i] = '-'
		}
	}

	var output string
	if p.description != "" {
		output = fmt.Sprintf("\r%s [%s] %.1f%% | Cues: %d", p.description, string(bar), percent, p.cues)
	} else {
		output = fmt.Sprintf("\r[%s] %.1f%% | Cues: %d", string(bar), percent, p.cues)
	}
	if remaining := p.total - p.current; remaining > 0 {
		output += fmt.Sprintf(" | Remaining: %s", formatDuration(remaining))
	}

	fmt.Fprint(p.output, output)
}

// Finish draws the bar full and ends the line.
func (p *ProgressBar) Finish() {
	if !p.enabled {
		return
	}

	p.current = p.total
	p.render()
	fmt.Fprint(p.output, "\n")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// SimpleProgress reports cue count and elapsed time for drills without a
// duration limit.
type SimpleProgress struct {
	output      io.Writer
	enabled     bool
	description string
	lastUpdate  time.Time
	interval    time.Duration
}

// NewSimpleProgress creates a new simple progress indicator
func NewSimpleProgress(description string, updateInterval time.Duration) *SimpleProgress {
	return &SimpleProgress{
		output:      os.Stderr,
		enabled:     true,
		description: description,
		lastUpdate:  time.Now(),
		interval:    updateInterval,
	}
}

// SetOutput redirects rendering.
func (s *SimpleProgress) SetOutput(w io.Writer) {
	s.output = w
}

// Update prints the cue count, elapsed time and an optional message.
func (s *SimpleProgress) Update(cues uint64, elapsed time.Duration, message string) {
	if !s.enabled {
		return
	}

	now := time.Now()
	if now.Sub(s.lastUpdate) < s.interval {
		return
	}
	s.lastUpdate = now

	var output string
	if s.description != "" {
		output = fmt.Sprintf("\r%s: %d cues | Elapsed: %s", s.description, cues, formatDuration(elapsed))
	} else {
		output = fmt.Sprintf("\r%d cues | Elapsed: %s", cues, formatDuration(elapsed))
	}

	if message != "" {
		output += fmt.Sprintf(" | %s", message)
	}

	fmt.Fprint(s.output, output)
}

// Finish finishes the progress indicator
func (s *SimpleProgress) Finish() {
	if !s.enabled {
		return
	}
	fmt.Fprint(s.output, "\n")
}
