package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devbush/audio-transcribe/internal/application"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

type entryKind int

const (
	entryParent entryKind = iota
	entryDir
	entryFile
)

type browserEntry struct {
	kind entryKind
	name string
	size int64
}

// FileBrowserModel is the bubbletea model for picking an audio file
type FileBrowserModel struct {
	currentDir  string
	entries     []browserEntry
	cursor      int
	filterAudio bool
	selected    string
	readErr     error
}

// NewFileBrowserModel creates a browser rooted at startDir with the audio
// filter enabled.
func NewFileBrowserModel(startDir string) (FileBrowserModel, error) {
	m := FileBrowserModel{
		currentDir:  startDir,
		filterAudio: true,
	}
	entries, err := readEntries(startDir, true)
	if err != nil {
		return m, err
	}
	m.entries = entries
	return m, nil
}

// readEntries lists dir: parent link first, then directories, then files,
// each group sorted by name. With audioOnly set, non-audio files are hidden
// (directories always show, so navigation keeps working).
func readEntries(dir string, audioOnly bool) ([]browserEntry, error) {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []browserEntry
	for _, item := range listing {
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		if item.IsDir() {
			dirs = append(dirs, browserEntry{kind: entryDir, name: item.Name()})
			continue
		}
		if audioOnly && !application.IsSupportedAudioFile(item.Name()) {
			continue
		}
		var size int64
		if info, err := item.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, browserEntry{kind: entryFile, name: item.Name(), size: size})
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	var entries []browserEntry
	if filepath.Dir(dir) != dir {
		entries = append(entries, browserEntry{kind: entryParent, name: ".."})
	}
	entries = append(entries, dirs...)
	entries = append(entries, files...)
	return entries, nil
}

func (m FileBrowserModel) Init() tea.Cmd {
	return nil
}

func (m FileBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "f":
			m.filterAudio = !m.filterAudio
			m.reload()
		case "enter":
			return m.openSelected()
		case "q", "ctrl+c", "esc":
			m.selected = ""
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *FileBrowserModel) reload() {
	entries, err := readEntries(m.currentDir, m.filterAudio)
	if err != nil {
		m.readErr = err
		return
	}
	m.readErr = nil
	m.entries = entries
	m.cursor = 0
}

func (m FileBrowserModel) openSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.entries) {
		return m, nil
	}

	entry := m.entries[m.cursor]
	switch entry.kind {
	case entryParent:
		m.currentDir = filepath.Dir(m.currentDir)
		m.reload()
	case entryDir:
		m.currentDir = filepath.Join(m.currentDir, entry.name)
		m.reload()
	case entryFile:
		m.selected = filepath.Join(m.currentDir, entry.name)
		return m, tea.Quit
	}
	return m, nil
}

func (m FileBrowserModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Select an audio file to transcribe"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Directory: %s\n", m.currentDir))

	filter := "All files"
	if m.filterAudio {
		filter = "Audio only"
	}
	sb.WriteString(fmt.Sprintf("Filter: %s\n", filter))

	if m.readErr != nil {
		sb.WriteString(fmt.Sprintf("Error: %v\n", m.readErr))
	}
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	if len(m.entries) == 0 {
		sb.WriteString(dimStyle.Render("  (empty)"))
		sb.WriteString("\n")
	}

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var line string
		switch entry.kind {
		case entryParent:
			line = dirStyle.Render("../")
		case entryDir:
			line = dirStyle.Render(entry.name + "/")
		case entryFile:
			line = fmt.Sprintf("%-44s %10s", entry.name, formatBytes(entry.size))
		}

		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(cursor + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("(up/down to navigate, enter to select, f to toggle filter, q to quit)"))
	sb.WriteString("\n")
	return sb.String()
}

// Selected returns the chosen file path, empty when the browser was
// cancelled.
func (m FileBrowserModel) Selected() string {
	return m.selected
}

// RunFileBrowser displays the browser and returns the selected file path,
// or an empty string when the operator quit without choosing.
func RunFileBrowser(startDir string) (string, error) {
	model, err := NewFileBrowserModel(startDir)
	if err != nil {
		return "", err
	}

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}

	if m, ok := finalModel.(FileBrowserModel); ok {
		return m.Selected(), nil
	}
	return "", nil
}
