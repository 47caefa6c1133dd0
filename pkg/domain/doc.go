// Package domain contains the entities shared across ytsum: transcripts
// fetched for a video and the summaries produced from text.
package domain
