package domain

import "fmt"

// ModelSize selects a Whisper model variant.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// AllModelSizes returns the supported sizes, smallest first.
func AllModelSizes() []ModelSize {
	return []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

func (s ModelSize) String() string {
	return string(s)
}

// ParseModelSize validates a size name from user input.
func ParseModelSize(s string) (ModelSize, error) {
	for _, size := range AllModelSizes() {
		if string(size) == s {
			return size, nil
		}
	}
	return "", fmt.Errorf("unknown model size: %s (use tiny, base, small, medium or large)", s)
}
