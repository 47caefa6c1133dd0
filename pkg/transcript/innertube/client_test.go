package innertube_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ytsum/pkg/serrors"
	"ytsum/pkg/transcript"
	"ytsum/pkg/transcript/innertube"
	"ytsum/pkg/youtube"

	"github.com/stretchr/testify/require"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
	`<text start="0.0" dur="1.5">Never gonna give you up</text>` +
	`<text start="1.5" dur="1.5">rock &amp;amp; roll</text>` +
	`<text start="3.0" dur="1.0">  </text>` +
	`<text start="4.0" dur="1.5">it&amp;#39;s fine</text>` +
	`</transcript>`

func mustID(t *testing.T) youtube.VideoID {
	t.Helper()
	id, err := youtube.ParseVideoID("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	return id
}

// newServer serves a watch page listing tracks built by tracksJSON, which
// receives the server URL.
func newServer(t *testing.T, tracksJSON func(base string) string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("v"))
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = fmt.Fprintf(w,
			`<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},`+
				`"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":%s}}};var meta = {"x":"}"};</script></html>`,
			tracksJSON(srv.URL))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(timedTextXML))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Fetch_success(t *testing.T) {
	srv := newServer(t, func(base string) string {
		return `[{"baseUrl":"` + base + `/api/timedtext?lang=de&v=dQw4w9WgXcQ","languageCode":"de"},` +
			`{"baseUrl":"` + base + `/api/timedtext?lang=en&kind=asr","languageCode":"en","kind":"asr"},` +
			`{"baseUrl":"` + base + `/api/timedtext?lang=en","languageCode":"en","name":{"simpleText":"English {manual}"}}]`
	})

	c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})
	tr, err := c.Fetch(context.Background(), mustID(t), []string{"en"})
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", tr.VideoID)
	require.Equal(t, "en", tr.Language)
	require.Equal(t, "Never gonna give you up\nrock & roll\nit's fine", tr.Text)
	require.False(t, tr.FetchedAt.IsZero())
}

func TestClient_Fetch_anyLanguage(t *testing.T) {
	srv := newServer(t, func(base string) string {
		return `[{"baseUrl":"` + base + `/api/timedtext?lang=fr","languageCode":"fr","kind":"asr"}]`
	})

	c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})

	_, err := c.Fetch(context.Background(), mustID(t), []string{transcript.DefaultLanguage})
	require.ErrorIs(t, err, transcript.ErrNoTranscript)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	tr, err := c.Fetch(context.Background(), mustID(t), nil)
	require.NoError(t, err)
	require.Equal(t, "fr", tr.Language)
}

func TestClient_Fetch_poTokenTracksSkipped(t *testing.T) {
	srv := newServer(t, func(base string) string {
		return `[{"baseUrl":"` + base + `/api/timedtext?lang=en&exp=xpe","languageCode":"en"}]`
	})

	c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), mustID(t), nil)
	require.ErrorIs(t, err, transcript.ErrNoTranscript)
}

func TestClient_Fetch_noCaptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script>var ytInitialPlayerResponse = ` +
			`{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}};</script>`))
	}))
	t.Cleanup(srv.Close)

	c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), mustID(t), nil)
	require.ErrorIs(t, err, transcript.ErrNoTranscript)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, err.Error(), "Video unavailable")
}

func TestClient_Fetch_missingPlayerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>consent required</html>`))
	}))
	t.Cleanup(srv.Close)

	c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), mustID(t), nil)
	require.Error(t, err)
	require.NotErrorIs(t, err, transcript.ErrNoTranscript)
}

func TestClient_Fetch_statusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{name: "not found", status: http.StatusNotFound, kind: serrors.ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "unavailable", status: http.StatusBadGateway, kind: serrors.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			t.Cleanup(srv.Close)

			c := innertube.New(srv.Client(), innertube.Options{BaseURL: srv.URL})
			_, err := c.Fetch(context.Background(), mustID(t), nil)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestClient_Fetch_canceled(t *testing.T) {
	c := innertube.New(http.DefaultClient, innertube.Options{BaseURL: "http://127.0.0.1:1", RequestsPerSecond: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, mustID(t), nil)
	require.ErrorIs(t, err, context.Canceled)
}
