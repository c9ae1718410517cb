// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rpy reads and writes Ren'Py script text: label blocks, dialogue
// statements, jump menus, and the init block that declares characters.
package rpy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/rpy-tools/internal/label"
)

const (
	// Ext is the file extension of script files.
	Ext = ".rpy"

	// Tab is one level of script indentation.
	Tab = "    "

	// Ellipsis stands in for a phrase that was left empty.
	Ellipsis = "..."

	// BackText is the display text of a menu entry that returns to a
	// parent menu.
	BackText = "< BACK"

	pass = "pass"
)

// quoteEscaper escapes characters that would terminate a script string.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Character declares a speaker in the init block.
type Character struct {
	Name string
	ID   string
}

// Writer emits script text. The first write error is kept and every later
// call becomes a no-op, so callers check Err (or Flush) once at the end.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w in a buffered script writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (sw *Writer) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

// Label writes a label declaration followed by a blank line.
func (sw *Writer) Label(name string) {
	sw.printf("%s %s%s\n\n", label.Keyword, name, label.Delimiter)
}

// Say writes one dialogue statement. An empty speaker ID writes narration.
func (sw *Writer) Say(speakerID, phrase string) {
	if speakerID == "" {
		sw.printf("%s%s\n", Tab, Quote(phrase))
		return
	}
	sw.printf("%s%s %s\n", Tab, speakerID, Quote(phrase))
}

// Pass writes the no-op statement used for empty blocks.
func (sw *Writer) Pass() {
	sw.printf("%s%s\n", Tab, pass)
}

// Menu writes a labeled jump menu. A non-empty back label is listed first.
// A page with neither a back label nor entries becomes a single pass.
func (sw *Writer) Menu(name, back string, entries []string) {
	sw.Label(name)

	if back == "" && len(entries) == 0 {
		sw.Pass()
		return
	}

	sw.printf("%smenu:\n", Tab)
	if back != "" {
		sw.jump(BackText, back)
	}
	for _, e := range entries {
		sw.jump(e, e)
	}
}

func (sw *Writer) jump(text, target string) {
	sw.printf("%s%s%s:\n", Tab, Tab, Quote(text))
	sw.printf("%s%s%sjump %s\n\n", Tab, Tab, Tab, target)
}

// Init writes the init block that registers the mod and declares every
// character in order.
func (sw *Writer) Init(modID string, characters []Character) {
	sw.printf("init:\n")

	if modID == "" && len(characters) == 0 {
		sw.Pass()
		return
	}

	if modID != "" {
		sw.printf("%s$ mods[%s] = u%s\n", Tab, Quote(modID), Quote(modID))
	}
	for _, c := range characters {
		sw.printf("%sdefine %s = Character(u%s)\n", Tab, c.ID, Quote(c.Name))
	}
	sw.printf("\n")
}

// Err returns the first write error, if any.
func (sw *Writer) Err() error {
	return sw.err
}

// Flush flushes buffered output and returns the first error seen.
func (sw *Writer) Flush() error {
	if sw.err != nil {
		return sw.err
	}
	sw.err = sw.w.Flush()
	return sw.err
}

// Quote wraps s in double quotes, escaping embedded quotes and backslashes.
func Quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
