package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ytsum/internal/transcripts"
	"ytsum/pkg/domain"
	"ytsum/pkg/serrors"

	"github.com/spf13/cobra"
)

// readText returns the text to summarize. "-" reads from stdin.
func readText(in io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	if args[0] != "-" {
		return args[0], nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("could not read stdin: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// summarizeCommand summarizes text given as an argument or on stdin, or the
// transcript of a video when --url is set.
func summarizeCommand(a *app) *cobra.Command {
	var rawURL, lang, command string

	cmd := &cobra.Command{
		Use:   "summarize [text|-]",
		Short: "Summarizes text or the transcript of a YouTube video",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if rawURL != "" && len(args) > 0 {
				return errors.New("either text or --url can be given, not both")
			}

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			if rawURL == "" && strings.TrimSpace(text) == "" {
				return serrors.With(serrors.ErrBadRequest, "no text provided to process")
			}

			var trs transcripts.Service
			if rawURL != "" {
				var closeTrs func()
				trs, closeTrs, err = newTranscripts(ctx, a.cfg)
				if err != nil {
					return err
				}
				defer closeTrs()
			}

			svc, err := newSummarizer(a.cfg, trs)
			if err != nil {
				return err
			}

			var summary *domain.Summary
			if rawURL != "" {
				summary, err = svc.SummarizeVideo(ctx, rawURL, lang, command)
			} else {
				summary, err = svc.Summarize(ctx, text, command)
			}
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary.Text)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "Summarize the transcript of this YouTube video")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Preferred transcript language with --url")
	cmd.Flags().StringVarP(&command, "command", "C", "", "Extra instruction appended to the prompt")

	return cmd
}
