package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type progressMsg struct {
	downloaded int64
	total      int64
}

type downloadDoneMsg struct {
	err error
}

// DownloadModel is the bubbletea model for a single-file download bar
type DownloadModel struct {
	label      string
	bar        progress.Model
	downloaded int64
	total      int64
	err        error
	done       bool
}

// NewDownloadModel creates a download display for the given label
func NewDownloadModel(label string) DownloadModel {
	return DownloadModel{
		label: label,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (m DownloadModel) Init() tea.Cmd {
	return nil
}

func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.downloaded = msg.downloaded
		m.total = msg.total
		return m, nil
	case downloadDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DownloadModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.label)
	sb.WriteString("\n")

	if m.total > 0 {
		pct := float64(m.downloaded) / float64(m.total)
		sb.WriteString(m.bar.ViewAs(pct))
		sb.WriteString(fmt.Sprintf("  %s / %s", formatBytes(m.downloaded), formatBytes(m.total)))
	} else {
		sb.WriteString(formatBytes(m.downloaded))
	}
	sb.WriteString("\n")

	return sb.String()
}

// RunDownload displays a progress bar while fn runs. fn receives the
// progress callback to feed with byte counts.
func RunDownload(label string, fn func(progress func(downloaded, total int64)) error) error {
	p := tea.NewProgram(NewDownloadModel(label))

	go func() {
		err := fn(func(downloaded, total int64) {
			p.Send(progressMsg{downloaded: downloaded, total: total})
		})
		p.Send(downloadDoneMsg{err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(DownloadModel); ok {
		return m.err
	}
	return nil
}
