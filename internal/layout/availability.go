package layout

import (
	"os"

	"github.com/devbush/audio-transcribe/internal/domain"
)

// IsAvailable reports whether path is a regular file with content. It fails
// closed: any filesystem error counts as unavailable, because a missing
// artifact is always recoverable by re-downloading.
func IsAvailable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// TranscriptionAvailable reports whether the whisper model for the given
// size is present under root.
func TranscriptionAvailable(root string, size domain.ModelSize) bool {
	return IsAvailable(WhisperModelPath(root, size))
}

// DiarizationAvailable reports whether both diarization models are present.
// A partial setup counts as wholly unavailable.
func DiarizationAvailable(root string) bool {
	return IsAvailable(SegmentationModelPath(root)) && IsAvailable(EmbeddingModelPath(root))
}
