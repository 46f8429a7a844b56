package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "cat\nact\ntac\n", []string{"cat", "act", "tac"}},
		{"crlf", "cat\r\nact\r\n", []string{"cat", "act"}},
		{"no trailing newline", "cat\ndog", []string{"cat", "dog"}},
		{"blank lines", "\ncat\n\n  \ndog\n\n", []string{"cat", "dog"}},
		{"case kept", "Aa\naA\nAA\n", []string{"Aa", "aA", "AA"}},
		{"utf8 bom", "\xef\xbb\xbfcat\ndog\n", []string{"cat", "dog"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadUTF16(t *testing.T) {
	// little endian, BOM then "ab\n"
	input := []byte{0xff, 0xfe, 'a', 0, 'b', 0, '\n', 0}
	got, err := Read(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, got)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("listen\nsilent\n"), 0o644))
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"listen", "silent"}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmpty)
		assert.Contains(t, err.Error(), path)
	})
}
