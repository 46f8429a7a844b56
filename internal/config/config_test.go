package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Dictionary)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, time.Duration(0), cfg.Search.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dictionary: /usr/share/dict/words
log:
  level: debug
  format: json
search:
  timeout: 2s
`), 0o644))

	t.Run("file", func(t *testing.T) {
		fs := Flags()
		require.NoError(t, fs.Parse([]string{"--config", path}))
		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("ANAGRAM_LOG_LEVEL", "warn")
		fs := Flags()
		require.NoError(t, fs.Parse([]string{"--config", path}))
		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("ANAGRAM_DICTIONARY", "env.txt")
		fs := Flags()
		require.NoError(t, fs.Parse([]string{"--config", path, "--dictionary", "flag.txt", "--timeout", "500ms"}))
		cfg, err := Load(fs)
		require.NoError(t, err)
		assert.Equal(t, "flag.txt", cfg.Dictionary)
		assert.Equal(t, 500*time.Millisecond, cfg.Search.Timeout)
	})

	t.Run("missing file", func(t *testing.T) {
		fs := Flags()
		require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
		_, err := Load(fs)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Log: LogConfig{Level: "info", Format: "console"}}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"log level":  func(c *Config) { c.Log.Level = "loud" },
		"log format": func(c *Config) { c.Log.Format = "xml" },
		"timeout":    func(c *Config) { c.Search.Timeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
