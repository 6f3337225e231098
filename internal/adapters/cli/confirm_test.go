package cli

import (
	"bytes"
	"strings"
	"testing"
)

func confirmWith(t *testing.T, input string) (bool, string) {
	t.Helper()
	var out bytes.Buffer
	c := &StdinConfirmer{In: strings.NewReader(input), Out: &out}
	got := c.ConfirmDownload([]string{"Whisper medium model"})
	return got, out.String()
}

func TestConfirmDownload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty line accepts", "\n", true},
		{"yes accepts", "yes\n", true},
		{"y accepts", "y\n", true},
		{"n declines", "n\n", false},
		{"no declines", "no\n", false},
		{"uppercase N declines", "N\n", false},
		{"uppercase NO declines", "NO\n", false},
		{"whitespace around decline", "  no  \n", false},
		{"anything else accepts", "sure, go ahead\n", true},
		{"nope is not a decline", "nope\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := confirmWith(t, tt.input)
			if got != tt.want {
				t.Errorf("ConfirmDownload() with %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfirmDownload_ShowsMissingArtifacts(t *testing.T) {
	_, out := confirmWith(t, "\n")

	if !strings.Contains(out, "Whisper medium model") {
		t.Error("prompt does not name the missing artifact")
	}
	if !strings.Contains(out, "[Y/n]") {
		t.Error("prompt does not show the default answer")
	}
}

func TestConfirmDownload_ClosedInputDeclines(t *testing.T) {
	var out bytes.Buffer
	c := &StdinConfirmer{In: strings.NewReader(""), Out: &out}

	if c.ConfirmDownload([]string{"Whisper tiny model"}) {
		t.Error("ConfirmDownload() = true on closed input")
	}
}
