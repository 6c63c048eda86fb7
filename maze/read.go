package maze

import (
	"bufio"
	"fmt"
	"io"
)

// maxRowBytes caps a single row read by ReadLines.
const maxRowBytes = 1 << 20

// ReadLines splits r into rows for Parse. Trailing empty rows (a final
// newline, blank lines at end of file) are dropped; interior blank rows are
// kept because they contribute to Height.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxRowBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
