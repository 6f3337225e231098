package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/audio-transcribe/internal/adapters/cli/tui"
	"github.com/devbush/audio-transcribe/internal/application"
	"github.com/devbush/audio-transcribe/internal/domain"
)

var (
	// Global flags
	modelFlag    string
	outputFlag   string
	formatFlag   string
	languageFlag string
	chunkFlag    float64
	jobsFlag     int
	noGPUFlag    bool
	verboseFlag  bool
	quietFlag    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "audio-transcribe [audio-file]",
		Short: "Transcribe audio files with speaker diarization",
		Long: `audio-transcribe is a CLI tool that transcribes audio files with
speaker diarization.

Provide an audio file path to transcribe it, or run without arguments
to pick one in the interactive file browser. Missing models are
downloaded to the platform cache on first use.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runRoot,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Whisper model: tiny, base, small, medium, large")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output directory for transcript files (default: input's directory)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text, srt, json")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "auto", "Language code (auto, en, fr, es, etc.)")
	rootCmd.PersistentFlags().Float64Var(&chunkFlag, "chunk-size", 120, "Target chunk duration in seconds")
	rootCmd.PersistentFlags().IntVar(&jobsFlag, "jobs", 0, "Number of parallel transcription jobs (0 = auto-detect)")
	rootCmd.PersistentFlags().BoolVar(&noGPUFlag, "no-gpu", false, "Disable GPU acceleration")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewModelCmd())
	rootCmd.AddCommand(NewCacheCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	size, err := resolveModelSize(app)
	if err != nil {
		return err
	}

	// Make sure every required model exists before touching the input
	display := tui.NewProgressDisplay(quietFlag)
	app.AcquireSvc.OnStep = display.BeginStep
	app.AcquireSvc.Progress = func(artifact string, downloaded, total int64) {
		display.UpdateBytes(downloaded, total)
	}

	ok, err := app.AcquireSvc.EnsureModels(cmd.Context(), size)
	if err != nil {
		display.Fail(err.Error())
		return err
	}
	if !ok {
		fmt.Println("Model download cancelled. Cannot proceed without required models.")
		return nil
	}
	display.Finish()
	if display.StepCount() > 0 && !quietFlag {
		fmt.Printf("Models are cached at: %s\n", app.CacheRoot)
	}

	// Resolve the input file: argument or interactive browser
	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	} else {
		startDir, err := os.Getwd()
		if err != nil {
			startDir = "."
		}
		inputPath, err = tui.RunFileBrowser(startDir)
		if err != nil {
			return fmt.Errorf("file browser: %w", err)
		}
		if inputPath == "" {
			fmt.Println("No file selected. Exiting...")
			return nil
		}
	}

	transcript, err := app.TranscribeSvc.Transcribe(cmd.Context(), inputPath, application.TranscribeOptions{
		Model:    size,
		Language: languageFlag,
	})
	if err != nil {
		return err
	}

	outPath, err := writeTranscript(transcript, inputPath, outputFlag, resolveFormat(app))
	if err != nil {
		return err
	}

	if !quietFlag {
		fmt.Printf("Transcript saved to: %s\n", outPath)
	}
	return nil
}

func resolveModelSize(app *App) (domain.ModelSize, error) {
	name := modelFlag
	if name == "" {
		name = app.Config.Defaults.Model
	}
	return domain.ParseModelSize(name)
}

func resolveFormat(app *App) string {
	if formatFlag != "" {
		return formatFlag
	}
	if app.Config.Defaults.Format != "" {
		return app.Config.Defaults.Format
	}
	return "text"
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
