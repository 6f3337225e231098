package ports

import (
	"context"

	"github.com/devbush/audio-transcribe/internal/domain"
)

// Model describes a Whisper model variant
type Model struct {
	Size        domain.ModelSize
	Bytes       int64 // approximate download size
	Description string
	Downloaded  bool
}

// TranscribeOpts configures transcription behavior
type TranscribeOpts struct {
	Model    domain.ModelSize
	Language string // empty for auto-detect
}

// Transcriber handles speech-to-text conversion
type Transcriber interface {
	// Transcribe converts an audio file to a transcript
	Transcribe(ctx context.Context, audioPath string, opts TranscribeOpts) (*domain.Transcript, error)

	// AvailableModels returns the supported models with their cache state
	AvailableModels() []Model

	// IsModelDownloaded checks if a model is available locally
	IsModelDownloaded(size domain.ModelSize) bool
}
