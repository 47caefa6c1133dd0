package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// transcriptCommand downloads and prints the cleaned transcript of a video.
func transcriptCommand(a *app) *cobra.Command {
	var rawURL, lang string

	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Downloads the transcript of a YouTube video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			trs, closeTrs, err := newTranscripts(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer closeTrs()

			tr, err := trs.Fetch(ctx, rawURL, lang)
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tr.Text)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "YouTube video URL")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Preferred transcript language (default from config)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
