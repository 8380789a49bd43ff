package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uilive"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/multi-downloader/internal/config"
	"github.com/ytget/multi-downloader/internal/download"
	"github.com/ytget/multi-downloader/internal/model"
	"github.com/ytget/multi-downloader/internal/platform"
	"github.com/ytget/multi-downloader/internal/request"
	"github.com/ytget/multi-downloader/internal/transcode"
)

// RetryDelay is the pause between download attempts
const RetryDelay = 2 * time.Second

func (c *cli) newGetCmd() *cobra.Command {
	var (
		audioOnly bool
		gpu       bool
		clipRange string
	)

	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Download one video or its audio track",
		Example: `  multi-dl get https://youtu.be/dQw4w9WgXcQ --dest ~/Videos --quality 720p
  multi-dl get https://youtu.be/dQw4w9WgXcQ --range "1:45 1:55" --gpu
  multi-dl get https://www.tiktok.com/@user/video/123 --audio`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := request.Input{
				URL:       args[0],
				AudioOnly: audioOnly,
				Quality:   model.ParseQuality(c.cfg.Quality),
				Range:     clipRange,
				GPU:       gpu,
			}
			return c.runGet(cmd, in)
		},
	}

	cmd.Flags().BoolVar(&audioOnly, "audio", false, "Download audio only and convert to MP3")
	cmd.Flags().BoolVar(&gpu, "gpu", false, "Re-encode with NVENC (YouTube only)")
	cmd.Flags().StringVar(&clipRange, "range", "", `Clip range "start end", e.g. "1:45 1:55" (YouTube only)`)
	cmd.Flags().String("quality", string(model.DefaultQuality), "Maximum video quality (best, 720p, 1080p, 1440p, 2160p, 4320p, 15360p)")
	cmd.Flags().String("dest", "", "Download folder")
	cmd.Flags().Int("retries", config.DefaultRetries, "Retries after a failed download")
	_ = c.v.BindPFlag(config.KeyQuality, cmd.Flags().Lookup("quality"))
	_ = c.v.BindPFlag(config.KeyDest, cmd.Flags().Lookup("dest"))
	_ = c.v.BindPFlag(config.KeyRetries, cmd.Flags().Lookup("retries"))

	return cmd
}

// runGet validates, translates and downloads one request with live progress
func (c *cli) runGet(cmd *cobra.Command, in request.Input) error {
	req, err := request.Build(in)
	if err != nil {
		return describe(err)
	}
	if err := request.RequireDestination(c.cfg.Dest); err != nil {
		return describe(err)
	}
	if err := platform.CreateDirectoryIfNotExists(c.cfg.Dest); err != nil {
		return fmt.Errorf("failed to create download folder: %w", err)
	}

	ctx := cmd.Context()
	ffmpeg := c.ffmpegPath()
	translator := request.NewTranslator(transcode.NewEncoderProbe(newRunner(), ffmpeg))
	spec := translator.Translate(ctx, req, c.cfg.Dest)
	for _, notice := range spec.Notices {
		log.Warn(notice)
	}

	svc := download.NewService(newExecutor(ffmpeg))
	svc.SetRetryPolicy(c.cfg.Retries, RetryDelay)

	relay, err := svc.Start(ctx, req, spec)
	if err != nil {
		return err
	}

	writer := uilive.New()
	writer.Out = cmd.OutOrStdout()
	writer.Start()

	final := relay.Consume(
		func(u model.ProgressUpdate) { fmt.Fprintln(writer, progressLine(u)) },
		func(u model.ProgressUpdate) { fmt.Fprintln(writer, progressLine(u)) },
	)
	writer.Stop()
	if final.Err != nil {
		return final.Err
	}

	if task, ok := svc.Current(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", task.GetDisplayTitle())
		if task.OutputPath != "" {
			log.WithField("file", task.OutputPath).Info("Saved")
		}
	}
	return nil
}

// progressLine renders an update for the live terminal writer
func progressLine(u model.ProgressUpdate) string {
	if u.Indeterminate() {
		return fmt.Sprintf("[  ...  ] %s", u.Status)
	}
	return fmt.Sprintf("[%5.1f%%] %s", float64(u.Percent), u.Status)
}

// describe turns a validation error into its user-facing text
func describe(err error) error {
	title, text := request.Message(err)
	return fmt.Errorf("%s: %s: %w", title, text, err)
}
