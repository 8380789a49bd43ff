package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/multi-downloader/internal/platform"
	"github.com/ytget/multi-downloader/internal/request"
)

func (c *cli) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <url>",
		Short: "Print the platform a URL belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := platform.DetectPlatform(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), p)
			if !p.IsKnown() {
				return request.ErrUnsupportedPlatform
			}
			return nil
		},
	}
}
