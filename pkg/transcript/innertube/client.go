// Package innertube provides a transcript.Fetcher backed by the public
// YouTube watch page. The page embeds the player response JSON, which lists
// the caption tracks of the video; the chosen track is then downloaded in
// YouTube's timedtext XML format.
package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ytsum/pkg/domain"
	"ytsum/pkg/serrors"
	"ytsum/pkg/transcript"
	"ytsum/pkg/youtube"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the origin serving watch pages.
	DefaultBaseURL = "https://www.youtube.com"
	// DefaultUserAgent is sent with every request; YouTube serves a reduced
	// page to unknown agents.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	playerResponseMarker = "ytInitialPlayerResponse = "
	maxWatchPageBytes    = 8 << 20
	maxTimedTextBytes    = 2 << 20
)

// Options configure a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// RequestsPerSecond limits outgoing requests. Zero disables limiting.
	RequestsPerSecond float64
}

// Client fetches transcripts from YouTube watch pages. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	now        func() time.Time
}

// Ensure Client conforms to the transcript.Fetcher interface at compile time.
var _ transcript.Fetcher = (*Client)(nil)

// New constructs a Client that performs requests with httpClient.
func New(httpClient *http.Client, opts Options) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		now:        time.Now,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return c
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	// Kind is "asr" for auto-generated tracks and empty for uploaded ones.
	Kind string `json:"kind"`
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch downloads the transcript of videoID in the first language of langs
// that has a caption track, preferring uploaded tracks over auto-generated
// ones. With empty langs the first listed track is used.
func (c *Client) Fetch(ctx context.Context, videoID youtube.VideoID, langs []string) (*domain.Transcript, error) {
	page, err := c.get(ctx, c.baseURL+"/watch?v="+url.QueryEscape(videoID.String()), maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("could not fetch watch page: %w", err)
	}

	tracks, err := captionTracks(page)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, langs)
	if !ok {
		return nil, serrors.Wrap(serrors.ErrNotFound, transcript.ErrNoTranscript,
			"no caption track for languages %v", langs)
	}

	body, err := c.get(ctx, track.BaseURL, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("could not fetch captions: %w", err)
	}

	text, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}

	return &domain.Transcript{
		VideoID:   videoID.String(),
		Language:  track.LanguageCode,
		Text:      text,
		FetchedAt: c.now().UTC(),
	}, nil
}

func (c *Client) get(ctx context.Context, target string, limit int64) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "not found: %s", target)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited by YouTube")
	case resp.StatusCode >= 500:
		return nil, serrors.With(serrors.ErrUnavailable, "YouTube returned %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

// captionTracks extracts the caption track list from a watch page.
func captionTracks(page []byte) ([]captionTrack, error) {
	idx := bytes.Index(page, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, errors.New("player response not found in watch page")
	}

	raw := extractJSONObject(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, errors.New("could not extract player response JSON")
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("could not decode player response: %w", err)
	}

	if pr.Captions == nil || len(pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Reason != "" {
			return nil, serrors.Wrap(serrors.ErrNotFound, transcript.ErrNoTranscript,
				"captions unavailable: %s", pr.PlayabilityStatus.Reason)
		}

		return nil, serrors.Wrap(serrors.ErrNotFound, transcript.ErrNoTranscript, "video has no captions")
	}

	return pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// needsPoToken reports whether a track URL can only be fetched by a browser
// holding a proof-of-origin token.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack chooses an uploaded track in a preferred language, then an
// auto-generated one, then (only when langs is empty) the first track.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.BaseURL != "" && !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	if len(langs) == 0 {
		return usable[0], true
	}

	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}

	return captionTrack{}, false
}

// parseTimedText converts timedtext XML into one line per caption cue.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("could not decode timedtext XML: %w", err)
	}

	lines := make([]string, 0, len(tt.Lines))
	for _, l := range tt.Lines {
		// cue text is HTML-escaped inside the XML
		text := strings.TrimSpace(html.UnescapeString(l.Text))
		if text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return "", serrors.Wrap(serrors.ErrNotFound, transcript.ErrNoTranscript, "caption track is empty")
	}

	return strings.Join(lines, "\n"), nil
}

// extractJSONObject returns the balanced JSON object at the start of data.
func extractJSONObject(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	inString, escaped := false, false
	for i, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}

			continue
		}

		switch b {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}

	return nil
}
