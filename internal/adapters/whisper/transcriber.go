package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/devbush/audio-transcribe/internal/config"
	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/layout"
	"github.com/devbush/audio-transcribe/internal/ports"
)

// Approximate download sizes in bytes
var modelBytes = map[domain.ModelSize]int64{
	domain.ModelTiny:   75 * 1024 * 1024,
	domain.ModelBase:   140 * 1024 * 1024,
	domain.ModelSmall:  462 * 1024 * 1024,
	domain.ModelMedium: 1500 * 1024 * 1024,
	domain.ModelLarge:  3000 * 1024 * 1024,
}

var modelDescriptions = map[domain.ModelSize]string{
	domain.ModelTiny:   "~75MB, basic accuracy, very fast",
	domain.ModelBase:   "~140MB, good accuracy, fast",
	domain.ModelSmall:  "~462MB, better accuracy, moderate speed",
	domain.ModelMedium: "~1.5GB, great accuracy, slower",
	domain.ModelLarge:  "~3GB, best accuracy, slow",
}

// Transcriber implements ports.Transcriber using whisper.cpp, loading model
// files from the shared cache layout.
type Transcriber struct {
	cacheRoot string
}

// NewTranscriber creates a transcriber reading models under cacheRoot
func NewTranscriber(cacheRoot string) *Transcriber {
	return &Transcriber{cacheRoot: cacheRoot}
}

func (t *Transcriber) AvailableModels() []ports.Model {
	var models []ports.Model
	for _, size := range domain.AllModelSizes() {
		models = append(models, ports.Model{
			Size:        size,
			Bytes:       modelBytes[size],
			Description: modelDescriptions[size],
			Downloaded:  t.IsModelDownloaded(size),
		})
	}
	return models
}

func (t *Transcriber) IsModelDownloaded(size domain.ModelSize) bool {
	return layout.TranscriptionAvailable(t.cacheRoot, size)
}

// DeleteModel removes a downloaded model file
func (t *Transcriber) DeleteModel(size domain.ModelSize) error {
	return os.Remove(layout.WhisperModelPath(t.cacheRoot, size))
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	model := opts.Model
	if model == "" {
		model = domain.ModelMedium
	}

	if !t.IsModelDownloaded(model) {
		return nil, domain.ErrModelNotFound
	}

	whisperBin := t.findWhisperBinary()
	if whisperBin == "" {
		return nil, fmt.Errorf("whisper binary not found (install whisper.cpp)")
	}

	// Create temp file for output
	tmpDir := os.TempDir()
	outputBase := filepath.Join(tmpDir, fmt.Sprintf("audio_transcribe_%d", time.Now().UnixNano()))

	args := []string{
		"-m", layout.WhisperModelPath(t.cacheRoot, model),
		"-f", audioPath,
		"-of", outputBase,
		"-oj", // JSON output
	}

	if opts.Language != "" && opts.Language != "auto" {
		args = append(args, "-l", opts.Language)
	}

	cmd := exec.CommandContext(ctx, whisperBin, args...)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTranscriptionFailed, err)
	}

	jsonPath := outputBase + ".json"
	defer os.Remove(jsonPath)

	return parseWhisperJSON(jsonPath, model)
}

func (t *Transcriber) findWhisperBinary() string {
	names := []string{"whisper", "whisper-cpp", "main"}
	if runtime.GOOS == "windows" {
		names = []string{"whisper.exe", "whisper-cpp.exe", "main.exe"}
	}

	// Check bundled location
	for _, name := range names {
		bundled := filepath.Join(config.BinDir(), name)
		if _, err := os.Stat(bundled); err == nil {
			return bundled
		}
	}

	// Check PATH
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

func parseWhisperJSON(path string, model domain.ModelSize) (*domain.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var output struct {
		Transcription []struct {
			Timestamps struct {
				From string `json:"from"`
				To   string `json:"to"`
			} `json:"timestamps"`
			Text string `json:"text"`
		} `json:"transcription"`
	}

	if err := json.Unmarshal(data, &output); err != nil {
		return nil, err
	}

	var segments []domain.Segment
	var fullText strings.Builder

	for _, item := range output.Transcription {
		start := parseTimestamp(item.Timestamps.From)
		end := parseTimestamp(item.Timestamps.To)
		text := strings.TrimSpace(item.Text)

		segments = append(segments, domain.Segment{
			Start: start,
			End:   end,
			Text:  text,
		})

		if fullText.Len() > 0 {
			fullText.WriteString(" ")
		}
		fullText.WriteString(text)
	}

	return &domain.Transcript{
		Text:          fullText.String(),
		Segments:      segments,
		Model:         model.String(),
		Language:      "auto",
		TranscribedAt: time.Now(),
	}, nil
}

var timestampRegex = regexp.MustCompile(`(\d+):(\d+):(\d+)[,.](\d+)`)

func parseTimestamp(ts string) float64 {
	matches := timestampRegex.FindStringSubmatch(ts)
	if len(matches) != 5 {
		return 0
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}

// Ensure Transcriber implements interface
var _ ports.Transcriber = (*Transcriber)(nil)
