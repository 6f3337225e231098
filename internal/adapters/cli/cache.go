package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/layout"
)

// NewCacheCmd creates the cache subcommand
func NewCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Inspect the model cache",
		RunE:  runCacheInfo,
	}
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	root := app.CacheRoot
	fmt.Printf("Cache root: %s\n\n", root)

	fmt.Println("Whisper models:")
	for _, size := range domain.AllModelSizes() {
		fmt.Printf("  %-10s %s\n", size, availabilityLabel(layout.TranscriptionAvailable(root, size)))
	}

	fmt.Println("\nDiarization models:")
	fmt.Printf("  %-12s %s\n", "segmentation", availabilityLabel(layout.IsAvailable(layout.SegmentationModelPath(root))))
	fmt.Printf("  %-12s %s\n", "embedding", availabilityLabel(layout.IsAvailable(layout.EmbeddingModelPath(root))))

	if layout.IsAvailable(layout.SetupMarkerPath(root)) {
		fmt.Println("\nSetup marker present")
	}

	return nil
}

func availabilityLabel(available bool) string {
	if available {
		return "available"
	}
	return "missing"
}
