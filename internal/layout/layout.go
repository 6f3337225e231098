// Package layout maps model artifacts to their canonical locations under
// the cache root. Path computation is pure: the same root and artifact
// always yield the same path, which is what makes availability re-checks
// idempotent.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/devbush/audio-transcribe/internal/domain"
)

const (
	// The segmentation archive always extracts to a directory named after
	// itself, so the extracted layout is known ahead of time.
	segmentationDirName = "sherpa-onnx-pyannote-segmentation-3-0"
	embeddingFileName   = "3dspeaker_speech_eres2net_base_sv_zh-cn_3dspeaker_16k.onnx"
	markerFileName      = "setup_complete.txt"
)

const (
	// SegmentationArchiveURL is the sherpa-onnx release archive holding the
	// pyannote segmentation model.
	SegmentationArchiveURL = "https://github.com/k2-fsa/sherpa-onnx/releases/download/speaker-segmentation-models/sherpa-onnx-pyannote-segmentation-3-0.tar.bz2"

	// EmbeddingModelURL is the 3D-Speaker embedding model. The misspelled
	// release tag ("recongition") is upstream's.
	EmbeddingModelURL = "https://github.com/k2-fsa/sherpa-onnx/releases/download/speaker-recongition-models/3dspeaker_speech_eres2net_base_sv_zh-cn_3dspeaker_16k.onnx"
)

// WhisperModelURL returns the upstream download URL for a model size.
func WhisperModelURL(size domain.ModelSize) string {
	return fmt.Sprintf("https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-%s.bin", size)
}

// WhisperModelDir returns <root>/whisper/<size>.
func WhisperModelDir(root string, size domain.ModelSize) string {
	return filepath.Join(root, "whisper", size.String())
}

// WhisperModelPath returns <root>/whisper/<size>/ggml-<size>.bin.
func WhisperModelPath(root string, size domain.ModelSize) string {
	return filepath.Join(WhisperModelDir(root, size), fmt.Sprintf("ggml-%s.bin", size))
}

// PyannoteDir returns <root>/pyannote, home of both diarization models.
func PyannoteDir(root string) string {
	return filepath.Join(root, "pyannote")
}

// SegmentationModelPath returns the model file inside the extracted
// segmentation archive directory.
func SegmentationModelPath(root string) string {
	return filepath.Join(PyannoteDir(root), segmentationDirName, "model.onnx")
}

// EmbeddingModelPath returns the speaker embedding model file.
func EmbeddingModelPath(root string) string {
	return filepath.Join(PyannoteDir(root), embeddingFileName)
}

// SetupMarkerPath returns the diarization completion marker. The marker is
// informational only; availability is always decided by the model files.
func SetupMarkerPath(root string) string {
	return filepath.Join(PyannoteDir(root), markerFileName)
}
