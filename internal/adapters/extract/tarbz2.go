// Package extract unpacks model archives with the system tar binary.
// Archive handling stays in an external tool; the orchestrator only needs
// the exit status and diagnostics.
package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/ports"
)

// TarExtractor implements ports.Extractor via `tar -xjf`.
type TarExtractor struct{}

// NewTarExtractor creates a new tar-based extractor
func NewTarExtractor() *TarExtractor {
	return &TarExtractor{}
}

func (e *TarExtractor) Extract(ctx context.Context, archivePath, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create extraction directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, "tar", "-xjf", archivePath, "-C", destDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &domain.ExtractError{
			Archive: archivePath,
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		}
	}

	return nil
}

// Ensure TarExtractor implements interface
var _ ports.Extractor = (*TarExtractor)(nil)
