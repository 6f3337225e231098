package domain

import (
	"strings"
	"testing"
)

func sampleTranscript() *Transcript {
	return &Transcript{
		Segments: []Segment{
			{Start: 0, End: 2.5, Speaker: "Speaker 1", Text: " Hello there. "},
			{Start: 2.5, End: 5, Speaker: "Speaker 2", Text: "General Kenobi."},
		},
		Model:    "medium",
		Language: "en",
	}
}

func TestTranscript_ToText(t *testing.T) {
	tr := sampleTranscript()

	got := tr.ToText()
	want := "Hello there. General Kenobi."
	if got != want {
		t.Errorf("ToText() = %q, want %q", got, want)
	}

	// Pre-joined text takes precedence
	tr.Text = "already joined"
	if tr.ToText() != "already joined" {
		t.Errorf("ToText() = %q, want already joined", tr.ToText())
	}
}

func TestTranscript_ToTimestamped(t *testing.T) {
	tr := sampleTranscript()

	got := tr.ToTimestamped()
	if !strings.Contains(got, "[00:00:00 - 00:00:02] Speaker 1: Hello there.") {
		t.Errorf("ToTimestamped() missing first line, got:\n%s", got)
	}
	if !strings.Contains(got, "Speaker 2: General Kenobi.") {
		t.Errorf("ToTimestamped() missing second speaker, got:\n%s", got)
	}
}

func TestTranscript_ToSRT(t *testing.T) {
	tr := sampleTranscript()

	got := tr.ToSRT()
	if !strings.HasPrefix(got, "1\n00:00:00,000 --> 00:00:02,500\n") {
		t.Errorf("ToSRT() bad first cue:\n%s", got)
	}
	if !strings.Contains(got, "2\n00:00:02,500 --> 00:00:05,000\nSpeaker 2: General Kenobi.") {
		t.Errorf("ToSRT() bad second cue:\n%s", got)
	}
}

func TestFormatSRTTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{61, "00:01:01,000"},
		{3661.25, "01:01:01,250"},
	}

	for _, tt := range tests {
		if got := formatSRTTime(tt.seconds); got != tt.want {
			t.Errorf("formatSRTTime(%v) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}
