// Package logo loads the text-art logo drawn in the header.
package logo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// Fallback is drawn when no logo file can be read.
	Fallback = "🚆"
	// MissingWarning is shown once in the header when the logo file is absent.
	MissingWarning = "Logo file not found. Using a placeholder or removing logo for now."

	maxLineBytes = 4 * 1024
)

// Logo is the art to draw plus whether it came from disk.
type Logo struct {
	Lines []string
	Found bool
}

// Fallbacked returns the placeholder logo.
func Fallbacked() Logo {
	return Logo{Lines: []string{Fallback}}
}

// Warning returns the notice to show for this logo, empty when the file loaded.
func (l Logo) Warning() string {
	if l.Found {
		return ""
	}
	return MissingWarning
}

// Load reads at most maxLines lines of art from path, dropping trailing blank
// lines. A missing or empty file yields the fallback logo and a nil error. Any
// other read failure also yields the fallback, with the error returned for
// logging.
func Load(path string, maxLines int) (Logo, error) {
	if strings.TrimSpace(path) == "" || maxLines <= 0 {
		return Fallbacked(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Fallbacked(), nil
		}
		return Fallbacked(), fmt.Errorf("open logo: %w", err)
	}
	defer file.Close()

	lines := make([]string, 0, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)
	for scanner.Scan() && len(lines) < maxLines {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return Fallbacked(), fmt.Errorf("read logo: %w", err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Fallbacked(), nil
	}
	return Logo{Lines: lines, Found: true}, nil
}

// Width returns the widest line in runes.
func (l Logo) Width() int {
	width := 0
	for _, line := range l.Lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	return width
}
