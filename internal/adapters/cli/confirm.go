package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devbush/audio-transcribe/internal/ports"
)

// StdinConfirmer implements ports.Confirmer with a single terminal prompt.
// Only an explicit `n` or `no` declines; everything else, including just
// pressing enter, accepts.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinConfirmer creates a confirmer bound to the process terminal
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{In: os.Stdin, Out: os.Stdout}
}

func (c *StdinConfirmer) ConfirmDownload(missing []string) bool {
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "Required models are missing:")
	for _, name := range missing {
		fmt.Fprintf(c.Out, "   - %s\n", name)
	}
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "Would you like to download the missing models now?")
	fmt.Fprintln(c.Out, "(This is a one-time download and models will be cached for future use)")
	fmt.Fprint(c.Out, "Download models? [Y/n]: ")

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		// A closed stdin cannot confirm anything
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer != "n" && answer != "no"
}

// Ensure StdinConfirmer implements interface
var _ ports.Confirmer = (*StdinConfirmer)(nil)
