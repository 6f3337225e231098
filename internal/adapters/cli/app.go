package cli

import (
	"net/http"
	"time"

	"github.com/devbush/audio-transcribe/internal/adapters/extract"
	"github.com/devbush/audio-transcribe/internal/adapters/httpget"
	"github.com/devbush/audio-transcribe/internal/adapters/whisper"
	"github.com/devbush/audio-transcribe/internal/application"
	"github.com/devbush/audio-transcribe/internal/config"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	CacheRoot   string
	Downloader  *httpget.Downloader
	Transcriber *whisper.Transcriber

	AcquireSvc    *application.AcquireService
	TranscribeSvc *application.TranscribeService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	root, err := config.CacheRoot()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureCacheDirs(root); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// Model downloads run into the hundreds of megabytes; the timeout
	// bounds a hung transfer, not a slow one.
	downloader := httpget.NewDownloader(&http.Client{Timeout: 60 * time.Minute})
	extractor := extract.NewTarExtractor()
	transcriber := whisper.NewTranscriber(root)

	acquireSvc := application.NewAcquireService(root, downloader, extractor, NewStdinConfirmer())
	transcribeSvc := application.NewTranscribeService(transcriber)

	return &App{
		Config:        cfg,
		CacheRoot:     root,
		Downloader:    downloader,
		Transcriber:   transcriber,
		AcquireSvc:    acquireSvc,
		TranscribeSvc: transcribeSvc,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
