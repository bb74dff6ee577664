package utils

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadLines reads one entry per line from r. Blank lines and lines starting
// with '#' are skipped. A terminal yields no lines instead of blocking.
func ReadLines(r io.Reader) ([]string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		// If it's a terminal, we don't want to block waiting for input
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, nil
		}
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ExpandStdin replaces a "-" argument with the lines read from r
func ExpandStdin(args []string, r io.Reader) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "-" {
			out = append(out, arg)
			continue
		}
		lines, err := ReadLines(r)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}
