package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Viper keys
const (
	KeyDest      = "dest"
	KeyFFmpeg    = "ffmpeg"
	KeyQuality   = "quality"
	KeyRetries   = "retries"
	KeyLogLevel  = "loglevel"
	KeyLogFormat = "logformat"

	EnvPrefix      = "MULTIDL"
	ConfigName     = "config"
	ConfigType     = "toml"
	ConfigDirName  = "multi-downloader"
	DefaultRetries = 1
)

// CLIConfig holds command line settings merged from file, env and flags
type CLIConfig struct {
	Dest      string `mapstructure:"dest"`
	FFmpeg    string `mapstructure:"ffmpeg"`
	Quality   string `mapstructure:"quality"`
	Retries   int    `mapstructure:"retries"`
	LogLevel  string `mapstructure:"loglevel"`
	LogFormat string `mapstructure:"logformat"`
}

// SetDefaults registers CLI defaults on v
func SetDefaults(v *viper.Viper) {
	// empty defaults make env-only keys visible to Unmarshal
	v.SetDefault(KeyDest, "")
	v.SetDefault(KeyFFmpeg, "")
	v.SetDefault(KeyQuality, "1080p")
	v.SetDefault(KeyRetries, DefaultRetries)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, LogFormatText)
}

// LoadCLIConfig reads cfgFile (or config.toml from the usual places) into v
// and returns the merged result. A missing config file is not an error.
func LoadCLIConfig(v *viper.Viper, cfgFile string) (CLIConfig, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigDirName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return CLIConfig{}, fmt.Errorf("read config: %w", err)
		}
		log.Debug("No config file found, using defaults and flags")
	} else {
		log.Debugf("Using config file: %s", v.ConfigFileUsed())
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return cfg, nil
}
