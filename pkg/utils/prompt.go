package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoFile is returned when the user did not pick a file.
var ErrNoFile = errors.New("no file selected")

// PromptForFile writes prompt to w and reads a single line from r,
// returning it with surrounding whitespace and quotes removed.
func PromptForFile(r io.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.Trim(strings.TrimSpace(line), `"'`)
	if line == "" {
		return "", ErrNoFile
	}
	return line, nil
}
