package ports

import "context"

// FileDownloader streams a remote file to a destination path.
type FileDownloader interface {
	// Download fetches url into destination, creating parent directories as
	// needed and overwriting any existing file. progress may be nil; total
	// is -1 when the server does not report a length.
	Download(ctx context.Context, url, destination string, progress func(downloaded, total int64)) error
}

// Extractor unpacks a compressed archive into a destination directory.
type Extractor interface {
	// Extract creates destDir if absent and unpacks archivePath into it.
	Extract(ctx context.Context, archivePath, destDir string) error
}

// Confirmer asks the operator whether missing models should be downloaded.
type Confirmer interface {
	// ConfirmDownload presents the missing artifacts and returns false only
	// on an explicit decline.
	ConfirmDownload(missing []string) bool
}
