package domain

import (
	"errors"
	"fmt"
)

var (
	// Cache and configuration errors
	ErrCacheDirUnavailable = errors.New("could not determine cache directory for this platform")
	ErrEmptyArtifact       = errors.New("downloaded artifact is empty")

	// Transcription errors
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrModelNotFound       = errors.New("model not found")
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
)

// NetworkError reports a failed artifact download. Status is zero when the
// transport failed before a response arrived.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ExtractError reports a failed archive extraction, carrying whatever the
// extraction tool wrote to its output streams.
type ExtractError struct {
	Archive string
	Output  string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("extract %s: %s", e.Archive, e.Output)
	}
	return fmt.Sprintf("extract %s: %v", e.Archive, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }
