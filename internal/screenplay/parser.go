// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screenplay parses plain-text screenplay lines of the form
// "Speaker: phrase" and tracks the speakers it has seen.
package screenplay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/rpy-tools/internal/label"
	"github.com/pdiddy/rpy-tools/internal/rpy"
)

const maxLineBytes = 1024 * 1024

// Line is one parsed screenplay line. Speaker is empty for narration.
type Line struct {
	Speaker string
	Phrase  string
	// LineNo is the 1-based source line number.
	LineNo int
}

// ParseLine parses a single line of screenplay text. It reports false when
// the line carries nothing to say.
//
// A line without a delimiter, or starting with one, is narration with the
// leading delimiters removed. Otherwise the text left of the first
// delimiter is the speaker and the text right of it is the phrase; an empty
// phrase becomes an ellipsis.
func ParseLine(line string) (Line, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Line{}, false
	}

	i := strings.Index(line, label.Delimiter)
	if i < 1 {
		phrase := strings.TrimLeft(line, label.Delimiter)
		if phrase == "" {
			return Line{}, false
		}
		return Line{Phrase: phrase}, true
	}

	speaker := strings.TrimSpace(line[:i])
	phrase := strings.TrimSpace(line[i+len(label.Delimiter):])

	if speaker == "" && phrase == "" {
		return Line{}, false
	}
	if phrase == "" {
		phrase = rpy.Ellipsis
	}
	return Line{Speaker: speaker, Phrase: phrase}, true
}

// Parse reads r line by line and returns every line that carries dialogue
// or narration, in source order.
func Parse(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []Line
	n := 0
	for scanner.Scan() {
		n++
		l, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		l.LineNo = n
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("reading line %d: %w", n+1, err)
	}
	return lines, nil
}
