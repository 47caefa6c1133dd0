package domain

import "time"

// Transcript is the caption text of a single video in one language.
type Transcript struct {
	// VideoID is the canonical YouTube identifier of the video.
	VideoID string `json:"videoId"`
	// Language is the BCP-47 code of the caption track, e.g. "en".
	Language string `json:"language"`
	// Text holds one caption line per line of text.
	Text string `json:"text"`
	// FetchedAt is when the captions were downloaded from YouTube.
	FetchedAt time.Time `json:"fetchedAt"`
}

// Summary is a model-generated summary of some source text.
type Summary struct {
	// Model is the model that produced the summary.
	Model string `json:"model"`
	// Text is the summary itself.
	Text string `json:"text"`
	// Source describes what was summarized: a video ID, or SourceText.
	Source string `json:"source"`
}

// SourceText marks a summary produced from caller-supplied text.
const SourceText = "text"
