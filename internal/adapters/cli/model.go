package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/audio-transcribe/internal/adapters/cli/tui"
	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/layout"
)

// NewModelCmd creates the model subcommand
func NewModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage Whisper models",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available models",
		RunE:  runModelList,
	}

	downloadCmd := &cobra.Command{
		Use:   "download <model>",
		Short: "Download a model",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelDownload,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <model>",
		Short: "Remove a downloaded model",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelRemove,
	}

	cmd.AddCommand(listCmd, downloadCmd, removeCmd)
	return cmd
}

func runModelList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	models := app.Transcriber.AvailableModels()

	fmt.Println()
	fmt.Printf("  %-10s %-12s %s\n", "Model", "Size", "Status")
	fmt.Println("  " + strings.Repeat("-", 40))

	for _, m := range models {
		status := "not downloaded"
		if m.Downloaded {
			status = "downloaded"
		}
		if m.Size.String() == app.Config.Defaults.Model {
			status += " (default)"
		}

		fmt.Printf("  %-10s %-12s %s\n", m.Size, formatSize(m.Bytes), status)
	}
	fmt.Println()

	return nil
}

func runModelDownload(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	size, err := domain.ParseModelSize(args[0])
	if err != nil {
		return err
	}

	if app.Transcriber.IsModelDownloaded(size) {
		fmt.Printf("Model '%s' is already downloaded\n", size)
		return nil
	}

	label := fmt.Sprintf("Downloading Whisper %s model", size)
	err = tui.RunDownload(label, func(progress func(downloaded, total int64)) error {
		return app.Downloader.Download(
			cmd.Context(),
			layout.WhisperModelURL(size),
			layout.WhisperModelPath(app.CacheRoot, size),
			progress,
		)
	})
	if err != nil {
		return err
	}

	fmt.Println("Model downloaded successfully")
	return nil
}

func runModelRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	size, err := domain.ParseModelSize(args[0])
	if err != nil {
		return err
	}

	if !app.Transcriber.IsModelDownloaded(size) {
		fmt.Printf("Model '%s' is not downloaded\n", size)
		return nil
	}

	if err := app.Transcriber.DeleteModel(size); err != nil {
		return err
	}

	fmt.Printf("Model '%s' removed\n", size)
	return nil
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.0f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.0f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
