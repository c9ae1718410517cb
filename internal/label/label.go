// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label normalizes free text into identifiers that are safe to use
// as jump targets in generated script files.
package label

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

const (
	// Keyword is the script keyword that declares a label. It doubles as the
	// prefix for labels that would otherwise start with a digit.
	Keyword = "label"

	// Delimiter separates a speaker from a phrase in screenplay text and
	// terminates a label declaration in script text.
	Delimiter = ":"
)

// now is replaced in tests.
var now = time.Now

var (
	synthMu   sync.Mutex
	lastMilli int64
	lastSeq   int
)

// Normalize returns a non-empty identifier for raw. Surrounding whitespace
// is trimmed. Empty input yields def, or a synthesized label when def is
// empty. Spaces and delimiters become underscores, and a leading digit gets
// the Keyword prefix.
func Normalize(raw, def string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		if def != "" {
			return def
		}
		return Synthesize()
	}

	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, Delimiter, "_")

	if r := []rune(s)[0]; unicode.IsDigit(r) {
		return Keyword + "_" + s
	}
	return s
}

// Synthesize returns a label derived from the current Unix time in
// milliseconds. Labels synthesized within the same millisecond get a
// sequence suffix so they stay distinct within a process.
func Synthesize() string {
	synthMu.Lock()
	defer synthMu.Unlock()

	ms := now().UnixMilli()
	if ms == lastMilli {
		lastSeq++
		return fmt.Sprintf("%s_%d_%d", Keyword, ms, lastSeq)
	}
	lastMilli = ms
	lastSeq = 0
	return fmt.Sprintf("%s_%d", Keyword, ms)
}

// Millis returns the current Unix time in milliseconds as a string. It is
// used to derive alternate file names that do not collide with existing
// output.
func Millis() string {
	return fmt.Sprintf("%d", now().UnixMilli())
}
