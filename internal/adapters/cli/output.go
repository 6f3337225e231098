package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbush/audio-transcribe/internal/domain"
)

// writeTranscript renders the transcript in the requested format and writes
// it next to the input file, or into outputDir when given. It returns the
// written path.
func writeTranscript(t *domain.Transcript, inputPath, outputDir, format string) (string, error) {
	var content, ext string
	switch format {
	case "text":
		content = t.ToTimestamped()
		ext = ".txt"
	case "srt":
		content = t.ToSRT()
		ext = ".srt"
	case "json":
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", err
		}
		content = string(data)
		ext = ".json"
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(dir, base+"_transcript"+ext)

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}
	return outPath, nil
}
