// Package httpget downloads model artifacts over plain HTTP GET.
package httpget

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/ports"
)

// Downloader implements ports.FileDownloader on net/http, streaming the
// response body to disk so multi-hundred-megabyte models never sit in
// memory. A failed attempt may leave a partial file behind for inspection;
// the zero-byte check in the availability layer keeps empty ones from being
// mistaken for models.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a downloader. A nil client means http.DefaultClient.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{client: client}
}

func (d *Downloader) Download(ctx context.Context, url, destination string, progress func(downloaded, total int64)) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return &domain.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.NetworkError{URL: url, Status: resp.StatusCode}
	}

	out, err := os.Create(destination)
	if err != nil {
		return err
	}

	total := resp.ContentLength
	var downloaded int64

	buf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			out.Close()
			return ctx.Err()
		default:
		}

		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				out.Close()
				return writeErr
			}
			downloaded += int64(n)
			if progress != nil {
				progress(downloaded, total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			return &domain.NetworkError{URL: url, Err: readErr}
		}
	}

	if err := out.Close(); err != nil {
		return err
	}

	// A zero-byte result means the server "succeeded" with nothing useful,
	// e.g. a truncated response saved as the model file.
	info, err := os.Stat(destination)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEmptyArtifact, destination)
	}

	return nil
}

// Ensure Downloader implements interface
var _ ports.FileDownloader = (*Downloader)(nil)
