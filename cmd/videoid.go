package main

import (
	"fmt"

	"ytsum/pkg/youtube"

	"github.com/spf13/cobra"
)

// videoIDCommand prints the video identifier of a YouTube URL.
func videoIDCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "videoid <url>",
		Short: "Extracts the video identifier from a YouTube URL",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := youtube.ParseVideoID
			if strict {
				parse = youtube.ParseVideoIDStrict
			}

			id, err := parse(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject anything after the identifier except an '&' query continuation")

	return cmd
}
