// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the end-of-run summary printed by both tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Row is one "name: value" line of a summary.
type Row struct {
	Name  string
	Value string
	// Bad marks a value that should stand out, such as a failure count.
	Bad bool
}

// Summary is a titled list of rows.
type Summary struct {
	Title string
	Rows  []Row
}

// Add appends a row with an integer value. Non-zero values with bad set
// are highlighted.
func (s *Summary) Add(name string, n int, bad bool) {
	s.Rows = append(s.Rows, Row{Name: name, Value: fmt.Sprintf("%d", n), Bad: bad && n > 0})
}

// AddText appends a row with a text value.
func (s *Summary) AddText(name, value string) {
	s.Rows = append(s.Rows, Row{Name: name, Value: value})
}

// Render returns the boxed summary.
func (s Summary) Render() string {
	width := 0
	for _, r := range s.Rows {
		width = max(width, len(r.Name))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	for _, r := range s.Rows {
		b.WriteString("\n")
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-*s", width+1, r.Name+":")))
		b.WriteString(" ")
		if r.Bad {
			b.WriteString(failStyle.Render(r.Value))
		} else {
			b.WriteString(okStyle.Render(r.Value))
		}
	}
	return boxStyle.Render(b.String())
}

// Print writes the rendered summary followed by a newline.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, s.Render())
}
