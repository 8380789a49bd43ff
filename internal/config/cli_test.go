package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadCLIConfig(v, "")
	require.NoError(t, err)

	assert.Equal(t, "1080p", cfg.Quality)
	assert.Equal(t, DefaultRetries, cfg.Retries)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Empty(t, cfg.Dest)
}

func TestLoadCLIConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `dest = "/srv/videos"
ffmpeg = "/opt/ffmpeg/bin/ffmpeg"
quality = "720p"
retries = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadCLIConfig(v, path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/videos", cfg.Dest)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpeg)
	assert.Equal(t, "720p", cfg.Quality)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCLIConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MULTIDL_DEST", "/from/env")

	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadCLIConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Dest)
}

func TestLoadCLIConfig_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("dest = [unterminated"), 0644))

	_, err := LoadCLIConfig(viper.New(), path)
	assert.Error(t, err)
}

func TestInitLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	require.NoError(t, InitLogging("debug", "json"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	require.NoError(t, InitLogging("WARN", ""))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, InitLogging("loud", "text"))
	assert.Error(t, InitLogging("info", "xml"))
}
