package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/layout"
	"github.com/devbush/audio-transcribe/internal/ports"
)

const scratchArchiveName = "pyannote-segmentation.tar.bz2"

// AcquireService checks model availability under a cache root and downloads
// whatever is missing after a single operator confirmation. Re-running it
// against a populated cache performs no network or filesystem writes.
type AcquireService struct {
	// Progress receives byte counts for the artifact currently downloading;
	// may be nil. total is -1 when the server did not report a length.
	Progress func(artifact string, downloaded, total int64)

	// OnStep receives human-readable step announcements; may be nil.
	OnStep func(step string)

	// ScratchDir holds the segmentation archive between download and
	// extraction. Defaults to the system temp directory.
	ScratchDir string

	// Pause is how long a successful acquisition lingers so the operator
	// can read the confirmation before the screen is reused.
	Pause time.Duration

	root       string
	downloader ports.FileDownloader
	extractor  ports.Extractor
	confirmer  ports.Confirmer
}

// NewAcquireService creates a new acquisition service for the given cache root
func NewAcquireService(root string, downloader ports.FileDownloader, extractor ports.Extractor, confirmer ports.Confirmer) *AcquireService {
	return &AcquireService{
		ScratchDir: os.TempDir(),
		Pause:      1500 * time.Millisecond,
		root:       root,
		downloader: downloader,
		extractor:  extractor,
		confirmer:  confirmer,
	}
}

// MissingArtifacts names the artifacts not currently available, for
// operator display.
func (s *AcquireService) MissingArtifacts(size domain.ModelSize) []string {
	return missingNames(
		layout.TranscriptionAvailable(s.root, size),
		layout.DiarizationAvailable(s.root),
		size,
	)
}

func missingNames(transcriptionOK, diarizationOK bool, size domain.ModelSize) []string {
	var missing []string
	if !transcriptionOK {
		missing = append(missing, fmt.Sprintf("Whisper %s model", size))
	}
	if !diarizationOK {
		missing = append(missing, "Speaker diarization models (segmentation + embedding)")
	}
	return missing
}

// EnsureModels verifies that every artifact needed for transcription with
// the given model size exists under the cache root, downloading anything
// missing after operator confirmation. It returns (true, nil) when models
// are available, (false, nil) when the operator declined, and an error when
// acquisition failed. A failed run persists nothing; the next run re-detects
// exactly what is still missing.
func (s *AcquireService) EnsureModels(ctx context.Context, size domain.ModelSize) (bool, error) {
	transcriptionOK := layout.TranscriptionAvailable(s.root, size)
	diarizationOK := layout.DiarizationAvailable(s.root)

	if transcriptionOK && diarizationOK {
		return true, nil
	}

	missing := missingNames(transcriptionOK, diarizationOK, size)
	if !s.confirmer.ConfirmDownload(missing) {
		return false, nil
	}

	if !transcriptionOK {
		if err := s.acquireTranscription(ctx, size); err != nil {
			return false, err
		}
	}

	if !diarizationOK {
		if err := s.acquireDiarization(ctx); err != nil {
			return false, err
		}
	}

	if s.Pause > 0 {
		time.Sleep(s.Pause)
	}
	return true, nil
}

func (s *AcquireService) acquireTranscription(ctx context.Context, size domain.ModelSize) error {
	s.step(fmt.Sprintf("Downloading Whisper %s model", size))

	dest := layout.WhisperModelPath(s.root, size)
	if err := s.downloader.Download(ctx, layout.WhisperModelURL(size), dest, s.progressFor("whisper-"+size.String())); err != nil {
		return fmt.Errorf("whisper %s model: %w", size, err)
	}
	return nil
}

// acquireDiarization runs the ordered bundle sequence: archive download,
// extraction, embedding download, completion marker. The extraction must
// finish before the embedding step because its output establishes the
// segmentation model path.
func (s *AcquireService) acquireDiarization(ctx context.Context) error {
	archive := filepath.Join(s.ScratchDir, scratchArchiveName)

	s.step("Downloading segmentation model archive")
	if err := s.downloader.Download(ctx, layout.SegmentationArchiveURL, archive, s.progressFor("segmentation")); err != nil {
		return fmt.Errorf("segmentation model: %w", err)
	}

	s.step("Extracting segmentation model")
	extractErr := s.extractor.Extract(ctx, archive, layout.PyannoteDir(s.root))
	// The archive is scratch data whether or not extraction worked.
	os.Remove(archive)
	if extractErr != nil {
		return fmt.Errorf("segmentation model: %w", extractErr)
	}

	s.step("Downloading speaker embedding model")
	if err := s.downloader.Download(ctx, layout.EmbeddingModelURL, layout.EmbeddingModelPath(s.root), s.progressFor("embedding")); err != nil {
		return fmt.Errorf("embedding model: %w", err)
	}

	return s.writeMarker()
}

// writeMarker records that the diarization bundle finished. The marker is
// informational; availability checks never trust it over the model files.
func (s *AcquireService) writeMarker() error {
	content := fmt.Sprintf(
		"Speaker diarization setup completed at: %s\n"+
			"Segmentation model: %s\n"+
			"Embedding model: %s\n",
		time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
		layout.SegmentationModelPath(s.root),
		layout.EmbeddingModelPath(s.root),
	)

	if err := os.WriteFile(layout.SetupMarkerPath(s.root), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write setup marker: %w", err)
	}
	return nil
}

func (s *AcquireService) step(name string) {
	if s.OnStep != nil {
		s.OnStep(name)
	}
}

func (s *AcquireService) progressFor(artifact string) func(downloaded, total int64) {
	if s.Progress == nil {
		return nil
	}
	return func(downloaded, total int64) {
		s.Progress(artifact, downloaded, total)
	}
}
