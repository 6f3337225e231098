package domain

import (
	"errors"
	"testing"
)

func TestAllModelSizes(t *testing.T) {
	sizes := AllModelSizes()

	if len(sizes) != 5 {
		t.Fatalf("AllModelSizes() returned %d sizes, want 5", len(sizes))
	}

	want := []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
	for i, size := range sizes {
		if size != want[i] {
			t.Errorf("AllModelSizes()[%d] = %s, want %s", i, size, want[i])
		}
	}
}

func TestParseModelSize(t *testing.T) {
	tests := []struct {
		input   string
		want    ModelSize
		wantErr bool
	}{
		{"tiny", ModelTiny, false},
		{"base", ModelBase, false},
		{"small", ModelSmall, false},
		{"medium", ModelMedium, false},
		{"large", ModelLarge, false},
		{"huge", "", true},
		{"", "", true},
		{"Medium", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModelSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseModelSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseModelSize(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	withStatus := &NetworkError{URL: "https://example.com/model.bin", Status: 404}
	if withStatus.Error() != "download https://example.com/model.bin: HTTP 404" {
		t.Errorf("Error() = %q", withStatus.Error())
	}

	cause := errors.New("connection refused")
	withErr := &NetworkError{URL: "https://example.com/model.bin", Err: cause}
	if !errors.Is(withErr, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestExtractError(t *testing.T) {
	cause := errors.New("exit status 2")
	e := &ExtractError{Archive: "/tmp/model.tar.bz2", Output: "tar: invalid header", Err: cause}

	if !errors.Is(e, cause) {
		t.Error("ExtractError should unwrap to its cause")
	}
	if e.Error() != "extract /tmp/model.tar.bz2: tar: invalid header" {
		t.Errorf("Error() = %q", e.Error())
	}
}
