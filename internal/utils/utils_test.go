package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"cat", true},
		{"Don't", true},
		{"o'clock'", true},
		{"'tis", false},
		{"", false},
		{"abc1", false},
		{"well-known", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWord(tt.in))
		})
	}
}

func TestIsValidInput(t *testing.T) {
	assert.True(t, IsValidInput("Hello"))
	assert.False(t, IsValidInput("h3llo"))
	assert.False(t, IsValidInput("123"))
	assert.False(t, IsValidInput(""))
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("Cat")
	assert.False(t, f.ShouldInclude("cat"), "the input itself is excluded")
	assert.True(t, f.ShouldInclude("cart"))
	assert.False(t, f.ShouldInclude("CART"))
	assert.True(t, f.ShouldInclude("cast"))
}

func TestFormatWithCommas(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		143091:   "143,091",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatWithCommas(in))
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.00", FormatSeconds(0))
	assert.Equal(t, "1.50", FormatSeconds(1500*time.Millisecond))
}

func TestGetDictPath(t *testing.T) {
	execDir := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	pr := newPathResolver(execDir, home)

	require.NoError(t, os.WriteFile(filepath.Join(execDir, "large.txt"), []byte("a"), 0644))

	got, err := pr.GetDictPath("large.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(execDir, "large.txt"), got)

	abs := filepath.Join(home, "abs.txt")
	require.NoError(t, os.WriteFile(abs, []byte("a"), 0644))
	got, err = pr.GetDictPath(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	_, err = pr.GetDictPath("missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("APPDATA", filepath.Join(home, "appdata"))
	pr := newPathResolver(t.TempDir(), home)

	path, err := pr.GetConfigPath("config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pr.GetConfigDir(), "config.toml"), path)
	assert.True(t, FileExists(pr.GetConfigDir()))
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	res := CheckDirStatus(dir)
	assert.True(t, res.Exists)
	assert.True(t, res.Writable)
	assert.NoError(t, res.Error)
	assert.False(t, FileExists(filepath.Join(dir, ".write_test")))
}
