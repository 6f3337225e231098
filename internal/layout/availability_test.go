package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devbush/audio-transcribe/internal/domain"
)

func TestIsAvailable(t *testing.T) {
	tmpDir := t.TempDir()

	// Non-existent path
	if IsAvailable(filepath.Join(tmpDir, "missing.bin")) {
		t.Error("IsAvailable() = true for non-existent file")
	}

	// Zero-byte file counts as missing
	empty := filepath.Join(tmpDir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("failed to create empty file: %v", err)
	}
	if IsAvailable(empty) {
		t.Error("IsAvailable() = true for zero-byte file")
	}

	// Non-empty file
	full := filepath.Join(tmpDir, "model.bin")
	if err := os.WriteFile(full, []byte("weights"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if !IsAvailable(full) {
		t.Error("IsAvailable() = false for non-empty file")
	}

	// Directory is not a regular file
	if IsAvailable(tmpDir) {
		t.Error("IsAvailable() = true for a directory")
	}
}

func TestTranscriptionAvailable(t *testing.T) {
	root := t.TempDir()

	if TranscriptionAvailable(root, domain.ModelMedium) {
		t.Error("TranscriptionAvailable() = true on empty root")
	}

	path := WhisperModelPath(root, domain.ModelMedium)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("weights"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !TranscriptionAvailable(root, domain.ModelMedium) {
		t.Error("TranscriptionAvailable() = false after writing model file")
	}
	if TranscriptionAvailable(root, domain.ModelTiny) {
		t.Error("TranscriptionAvailable() = true for a different size")
	}
}

func TestDiarizationAvailable_RequiresBothModels(t *testing.T) {
	root := t.TempDir()

	seg := SegmentationModelPath(root)
	emb := EmbeddingModelPath(root)

	writeModel := func(path string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("onnx"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if DiarizationAvailable(root) {
		t.Error("DiarizationAvailable() = true on empty root")
	}

	writeModel(seg)
	if DiarizationAvailable(root) {
		t.Error("DiarizationAvailable() = true with only segmentation model")
	}

	writeModel(emb)
	if !DiarizationAvailable(root) {
		t.Error("DiarizationAvailable() = false with both models present")
	}

	// Removing either model flips the combined result back to false
	if err := os.Remove(seg); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if DiarizationAvailable(root) {
		t.Error("DiarizationAvailable() = true after removing segmentation model")
	}
}
