package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/multi-downloader/internal/config"
	"github.com/ytget/multi-downloader/internal/download"
	"github.com/ytget/multi-downloader/internal/transcode"
)

// Hooks replaced in tests
var (
	newExecutor = func(ffmpegPath string) download.Executor {
		return download.NewYTDLPExecutor(ffmpegPath)
	}
	newRunner = func() transcode.Runner {
		return transcode.NewCommandRunner()
	}
)

// cli carries state shared by all subcommands of one invocation
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.CLIConfig
}

// newRootCmd builds the command tree with a fresh viper instance
func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	config.SetDefaults(c.v)

	root := &cobra.Command{
		Use:   "multi-dl",
		Short: "Download videos from YouTube, Instagram, TikTok and more",
		Long: `multi-dl validates a video URL, picks the yt-dlp format and
output naming for its platform and downloads it, optionally clipping
YouTube videos and re-encoding them on an NVIDIA GPU.`,
		PersistentPreRunE: c.loadConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "Configuration file path (default is ./config.toml or <user config dir>/multi-downloader/config.toml)")
	root.PersistentFlags().String("log-level", "info", "Logging level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", config.LogFormatText, "Logging format (text, json)")
	root.PersistentFlags().String("ffmpeg", "", "Path to ffmpeg (default: bundled copy or PATH)")
	_ = c.v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = c.v.BindPFlag(config.KeyLogFormat, root.PersistentFlags().Lookup("log-format"))
	_ = c.v.BindPFlag(config.KeyFFmpeg, root.PersistentFlags().Lookup("ffmpeg"))

	root.AddCommand(c.newGetCmd(), c.newDetectCmd(), c.newProbeCmd())
	return root
}

// loadConfig merges file, env and flags before any command runs
func (c *cli) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadCLIConfig(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	if err := config.InitLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	c.cfg = cfg
	return nil
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
