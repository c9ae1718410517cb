// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "characters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    CharacterList
		errMsg  string
	}{
		{
			name:    "keeps document order",
			content: "characters:\n  Zed: z\n  Anna: a\n  Mid Name: m\n",
			want: CharacterList{
				{Name: "Zed", ID: "z"},
				{Name: "Anna", ID: "a"},
				{Name: "Mid Name", ID: "m"},
			},
		},
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "null characters",
			content: "characters:\n",
		},
		{
			name:    "other keys ignored",
			content: "title: demo\ncharacters:\n  Eileen: e\n",
			want:    CharacterList{{Name: "Eileen", ID: "e"}},
		},
		{
			name:    "characters as list",
			content: "characters:\n  - Eileen\n",
			errMsg:  "must be a mapping",
		},
		{
			name:    "empty identifier",
			content: "characters:\n  Eileen: \"\"\n",
			errMsg:  "must be non-empty",
		},
		{
			name:    "malformed yaml",
			content: "characters: [\n",
			errMsg:  "parsing config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Characters)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
