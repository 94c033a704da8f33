package ggsoft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, uint16(20), s.DefaultTextSize)
	assert.Empty(t, s.Output)
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Settings
	}{
		{
			name:    "yaml",
			file:    "ggsoft.yaml",
			content: "default_text_size: 16\noutput: frame.png\n",
			want:    Settings{DefaultTextSize: 16, Output: "frame.png"},
		},
		{
			name:    "yml defaults size",
			file:    "ggsoft.yml",
			content: "output: out.bmp\n",
			want:    Settings{DefaultTextSize: 20, Output: "out.bmp"},
		},
		{
			name:    "toml",
			file:    "ggsoft.toml",
			content: "default_text_size = 12\noutput = \" frame.tiff \"\n",
			want:    Settings{DefaultTextSize: 12, Output: "frame.tiff"},
		},
		{
			name:    "empty toml",
			file:    "ggsoft.toml",
			content: "",
			want:    DefaultSettings(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSettings(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(writeFile(t, "ggsoft.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownSettingsFormat)

	_, err = LoadSettings(writeFile(t, "bad.yaml", "default_text_size: [1, 2"))
	assert.Error(t, err)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSettingsOptional(t *testing.T) {
	got, err := LoadSettingsOptional(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)

	got, err = LoadSettingsOptional(writeFile(t, "s.yaml", "default_text_size: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, uint16(9), got.DefaultTextSize)
}
