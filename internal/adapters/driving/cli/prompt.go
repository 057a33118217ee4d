package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// lineReader prints prompts and reads one answer per line from the
// command's input.
type lineReader struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newLineReader(cmd *cobra.Command) *lineReader {
	return &lineReader{
		cmd:    cmd,
		reader: bufio.NewReader(cmd.InOrStdin()),
	}
}

// ask prints prompt on its own line and returns the answer without its
// line terminator. End of input yields whatever was read so far, possibly
// an empty string.
func (r *lineReader) ask(prompt string) (string, error) {
	r.cmd.Println(prompt)

	line, err := r.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
