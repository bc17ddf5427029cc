package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultChannels, cfg.Channels)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steg.yml")
	data := []byte("key: from-file\nlimit: \"32\"\nchannels: rgb\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("STEG_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Key)
	assert.Equal(t, "32", cfg.Limit)
	assert.Equal(t, "rgb", cfg.Channels)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
