package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devbush/audio-transcribe/internal/domain"
)

func testTranscript() *domain.Transcript {
	return &domain.Transcript{
		Segments: []domain.Segment{
			{Start: 0, End: 2, Speaker: "Speaker 1", Text: "Hello."},
			{Start: 2, End: 4, Speaker: "Speaker 2", Text: "Hi."},
		},
		Model: "medium",
	}
}

func TestWriteTranscript_Text(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "interview.wav")

	outPath, err := writeTranscript(testTranscript(), input, "", "text")
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	if outPath != filepath.Join(dir, "interview_transcript.txt") {
		t.Errorf("output path = %s", outPath)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(content), "Speaker 1: Hello.") {
		t.Errorf("text output missing speaker line:\n%s", content)
	}
}

func TestWriteTranscript_SRT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "interview.wav")

	outPath, err := writeTranscript(testTranscript(), input, "", "srt")
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}
	if !strings.HasSuffix(outPath, "interview_transcript.srt") {
		t.Errorf("output path = %s", outPath)
	}

	content, _ := os.ReadFile(outPath)
	if !strings.Contains(string(content), "00:00:00,000 --> 00:00:02,000") {
		t.Errorf("srt output missing cue timing:\n%s", content)
	}
}

func TestWriteTranscript_JSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "interview.wav")

	outPath, err := writeTranscript(testTranscript(), input, "", "json")
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	content, _ := os.ReadFile(outPath)
	if !strings.Contains(string(content), `"model": "medium"`) {
		t.Errorf("json output missing model field:\n%s", content)
	}
}

func TestWriteTranscript_OutputDir(t *testing.T) {
	inputDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "transcripts")
	input := filepath.Join(inputDir, "talk.mp3")

	outPath, err := writeTranscript(testTranscript(), input, outDir, "text")
	if err != nil {
		t.Fatalf("writeTranscript() error = %v", err)
	}

	if filepath.Dir(outPath) != outDir {
		t.Errorf("output written to %s, want %s", filepath.Dir(outPath), outDir)
	}
}

func TestWriteTranscript_UnknownFormat(t *testing.T) {
	_, err := writeTranscript(testTranscript(), "in.wav", t.TempDir(), "xml")
	if err == nil {
		t.Error("writeTranscript() expected error for unknown format")
	}
}
