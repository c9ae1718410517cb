// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	s := Summary{Title: "RPY generator"}
	s.Add("Files", 3, false)
	s.Add("Failed", 1, true)
	s.Add("Skipped", 0, true)
	s.AddText("Main file", "out/main.rpy")

	assert.Len(t, s.Rows, 4)
	assert.True(t, s.Rows[1].Bad)
	assert.False(t, s.Rows[2].Bad, "zero failures are not highlighted")

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()

	for _, want := range []string{"RPY generator", "Files:", "3", "Failed:", "Main file:", "out/main.rpy"} {
		assert.Contains(t, out, want)
	}
}
