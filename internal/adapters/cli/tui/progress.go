package tui

import (
	"fmt"
	"sync"
	"time"
)

// StepStatus represents the state of a progress step
type StepStatus int

const (
	StepRunning StepStatus = iota
	StepComplete
	StepError
)

// ProgressStep represents one announced acquisition step
type ProgressStep struct {
	Name    string
	Status  StepStatus
	Current int64 // bytes downloaded so far, zero for non-download steps
	Total   int64
	Error   string
}

// ProgressDisplay renders acquisition steps as they are announced. Steps
// arrive dynamically (the orchestrator only announces what it actually has
// to do), so the display grows as it goes.
type ProgressDisplay struct {
	mu         sync.Mutex
	steps      []ProgressStep
	quiet      bool
	lastRender time.Time
	rendered   int // lines drawn by the previous render
}

// NewProgressDisplay creates a progress display
func NewProgressDisplay(quiet bool) *ProgressDisplay {
	return &ProgressDisplay{quiet: quiet}
}

// BeginStep completes the running step, if any, and starts a new one
func (p *ProgressDisplay) BeginStep(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completeRunning()
	p.steps = append(p.steps, ProgressStep{Name: name, Status: StepRunning})
	p.render()
}

// UpdateBytes updates download progress for the running step
func (p *ProgressDisplay) UpdateBytes(current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.steps) == 0 {
		return
	}
	step := &p.steps[len(p.steps)-1]
	step.Current = current
	step.Total = total

	// Throttle renders to avoid flickering
	if time.Since(p.lastRender) > 100*time.Millisecond {
		p.render()
	}
}

// Finish marks the running step complete and draws the final state
func (p *ProgressDisplay) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completeRunning()
	p.render()
}

// Fail marks the running step failed with the given message
func (p *ProgressDisplay) Fail(errMsg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.steps) == 0 {
		return
	}
	step := &p.steps[len(p.steps)-1]
	step.Status = StepError
	step.Error = errMsg
	p.render()
}

// StepCount returns how many steps were announced
func (p *ProgressDisplay) StepCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

func (p *ProgressDisplay) completeRunning() {
	if len(p.steps) == 0 {
		return
	}
	step := &p.steps[len(p.steps)-1]
	if step.Status == StepRunning {
		step.Status = StepComplete
	}
}

func (p *ProgressDisplay) render() {
	if p.quiet {
		return
	}

	p.lastRender = time.Now()

	if p.rendered > 0 {
		fmt.Printf("\033[%dA", p.rendered) // Move up
		fmt.Print("\033[J")                // Clear to end of screen
	}

	for i, step := range p.steps {
		stepNum := fmt.Sprintf("[%d]", i+1)

		var status string
		switch step.Status {
		case StepRunning:
			if step.Total > 0 {
				pct := float64(step.Current) / float64(step.Total) * 100
				status = fmt.Sprintf("%.1f%% (%s / %s)", pct, formatBytes(step.Current), formatBytes(step.Total))
			} else if step.Current > 0 {
				status = formatBytes(step.Current)
			} else {
				status = "..."
			}
		case StepComplete:
			status = "done"
		case StepError:
			status = "failed: " + step.Error
		}

		fmt.Printf("%s %s... %s\n", stepNum, step.Name, status)
	}

	p.rendered = len(p.steps)
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
