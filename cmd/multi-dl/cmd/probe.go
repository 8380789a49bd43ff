package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-downloader/internal/platform"
	"github.com/ytget/multi-downloader/internal/transcode"
)

func (c *cli) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check whether ffmpeg offers the NVENC hardware encoder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			probe := transcode.NewEncoderProbe(newRunner(), c.ffmpegPath())
			status := "not available"
			if probe.HasHWEncoder(cmd.Context()) {
				status = "available"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", transcode.HWEncoder, probe.FFmpegPath(), status)
			return nil
		},
	}
}

// ffmpegPath prefers the configured path over lookup
func (c *cli) ffmpegPath() string {
	if c.cfg.FFmpeg != "" {
		return c.cfg.FFmpeg
	}
	return platform.ResolveBinary(transcode.FFmpegCommand)
}
