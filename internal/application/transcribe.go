package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/ports"
)

var supportedAudioFormats = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".webm": true,
}

// IsSupportedAudioFile reports whether the path carries a supported audio
// extension.
func IsSupportedAudioFile(path string) bool {
	return supportedAudioFormats[strings.ToLower(filepath.Ext(path))]
}

// ValidateInput checks that path is an existing regular file with a
// supported audio extension.
func ValidateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}
	if !IsSupportedAudioFile(path) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
	return nil
}

// TranscribeOptions configures a transcription run
type TranscribeOptions struct {
	Model    domain.ModelSize
	Language string // empty defaults to "auto"
}

// TranscribeService runs the transcription pipeline against a confirmed
// model cache.
type TranscribeService struct {
	transcriber ports.Transcriber
}

// NewTranscribeService creates a new transcription service
func NewTranscribeService(transcriber ports.Transcriber) *TranscribeService {
	return &TranscribeService{transcriber: transcriber}
}

// Transcribe validates the input file and produces its transcript.
func (s *TranscribeService) Transcribe(ctx context.Context, inputPath string, opts TranscribeOptions) (*domain.Transcript, error) {
	if err := ValidateInput(inputPath); err != nil {
		return nil, err
	}

	model := opts.Model
	if model == "" {
		model = domain.ModelMedium
	}

	language := opts.Language
	if language == "" {
		language = "auto"
	}

	return s.transcriber.Transcribe(ctx, inputPath, ports.TranscribeOpts{
		Model:    model,
		Language: language,
	})
}
