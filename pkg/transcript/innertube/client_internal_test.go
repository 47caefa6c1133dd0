package innertube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_extractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: `{"a":1};var x`, want: `{"a":1}`},
		{name: "nested", in: `{"a":{"b":[{}]}} trailing`, want: `{"a":{"b":[{}]}}`},
		{name: "braces in strings", in: `{"a":"}{","b":"\"}"};`, want: `{"a":"}{","b":"\"}"}`},
		{name: "escaped backslash", in: `{"a":"\\"}x`, want: `{"a":"\\"}`},
		{name: "unbalanced", in: `{"a":{`, want: ""},
		{name: "not an object", in: `[1]`, want: ""},
		{name: "empty", in: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(extractJSONObject([]byte(tt.in))))
		})
	}
}

func Test_pickTrack(t *testing.T) {
	enASR := captionTrack{BaseURL: "u/en-asr", LanguageCode: "en", Kind: "asr"}
	enManual := captionTrack{BaseURL: "u/en", LanguageCode: "en"}
	de := captionTrack{BaseURL: "u/de", LanguageCode: "de"}
	blocked := captionTrack{BaseURL: "u/fr?x=1&exp=xpe", LanguageCode: "fr"}

	tests := []struct {
		name   string
		tracks []captionTrack
		langs  []string
		want   captionTrack
		ok     bool
	}{
		{name: "manual preferred", tracks: []captionTrack{enASR, enManual}, langs: []string{"en"}, want: enManual, ok: true},
		{name: "asr fallback", tracks: []captionTrack{de, enASR}, langs: []string{"en"}, want: enASR, ok: true},
		{name: "language order", tracks: []captionTrack{enManual, de}, langs: []string{"de", "en"}, want: de, ok: true},
		{name: "manual in later language beats asr", tracks: []captionTrack{enASR, de}, langs: []string{"en", "de"}, want: de, ok: true},
		{name: "no match", tracks: []captionTrack{de}, langs: []string{"en"}, ok: false},
		{name: "any language", tracks: []captionTrack{blocked, de, enManual}, want: de, ok: true},
		{name: "only blocked", tracks: []captionTrack{blocked}, ok: false},
		{name: "none", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickTrack(tt.tracks, tt.langs)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_parseTimedText(t *testing.T) {
	text, err := parseTimedText([]byte(`<transcript><text>a &amp;quot;b&amp;quot;</text><text>c</text></transcript>`))
	require.NoError(t, err)
	require.Equal(t, "a \"b\"\nc", text)

	_, err = parseTimedText([]byte(`<transcript></transcript>`))
	require.Error(t, err)

	_, err = parseTimedText([]byte(`not xml`))
	require.Error(t, err)
}
