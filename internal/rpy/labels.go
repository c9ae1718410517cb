// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rpy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/rpy-tools/internal/label"
)

// maxLineBytes bounds the length of a single script line.
const maxLineBytes = 1024 * 1024

// ExtractLabel returns the label declared on line, or "" when line is not
// a top-level label declaration. Only unindented lines of the form
// "label <name>:" count; anything after the first colon is ignored.
func ExtractLabel(line string) string {
	rest, ok := strings.CutPrefix(line, label.Keyword)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return ""
	}
	name, _, found := strings.Cut(rest, label.Delimiter)
	if !found {
		return ""
	}
	return strings.TrimSpace(name)
}

// ReadLabels returns every label declared in r, in file order.
func ReadLabels(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var labels []string
	for scanner.Scan() {
		if l := ExtractLabel(scanner.Text()); l != "" {
			labels = append(labels, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return labels, fmt.Errorf("scanning labels: %w", err)
	}
	return labels, nil
}
