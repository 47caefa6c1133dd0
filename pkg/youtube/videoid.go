// Package youtube extracts canonical video identifiers from YouTube URLs.
//
// Three URL shapes are recognized, with either http or https and an optional
// "www." subdomain:
//
//	https://www.youtube.com/watch?v=<id>[&...]
//	https://youtube.com/embed/<id>[...]
//	https://youtu.be/<id>[...]
//
// The identifier is the longest run of characters from YouTube's identifier
// alphabet (ASCII letters, digits, '-' and '_') following the path prefix.
// Everything after that run is discarded without inspection unless strict
// parsing is requested.
package youtube

import (
	"errors"
	"fmt"
	"strings"

	"ytsum/pkg/serrors"
)

const subdomain = "www."

// protocols and shapes are tried in order; the first literal match wins.
var (
	protocols = [...]string{"https://", "http://"}
	shapes    = [...]string{"youtube.com/watch?v=", "youtube.com/embed/", "youtu.be/"}
)

// Sentinel errors for each way parsing can fail. A *ParseError unwraps to
// exactly one of them, and also to serrors.ErrBadRequest.
var (
	ErrMissingProtocol      = errors.New("missing protocol")
	ErrUnrecognizedURLShape = errors.New("unrecognized URL shape")
	ErrEmptyIdentifier      = errors.New("empty identifier")
	// ErrTrailingGarbage is only returned by strict parsing.
	ErrTrailingGarbage = errors.New("unexpected trailing content")
)

// VideoID is a validated YouTube video identifier. The zero value is not a
// valid identifier; values are obtained from ParseVideoID.
type VideoID struct {
	id string
}

// String returns the identifier.
func (v VideoID) String() string { return v.id }

// IsZero reports whether v is the zero value.
func (v VideoID) IsZero() bool { return v.id == "" }

// MarshalText implements encoding.TextMarshaler.
func (v VideoID) MarshalText() ([]byte, error) { return []byte(v.id), nil }

// Stage names the parse stage at which matching stopped.
type Stage int

const (
	StageProtocol Stage = iota + 1
	StageHostPath
	StageIdentifier
	StageTrailing
)

func (s Stage) String() string {
	switch s {
	case StageProtocol:
		return "protocol"
	case StageHostPath:
		return "host+path"
	case StageIdentifier:
		return "identifier"
	case StageTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ParseError reports where and why an input was rejected.
type ParseError struct {
	// Stage is the stage that failed.
	Stage Stage
	// Offset is the byte offset in Input at which matching stopped.
	Offset int
	// Input is the rejected string.
	Input string

	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse YouTube URL: %s at offset %d (%s stage)", e.err, e.Offset, e.Stage)
}

// Unwrap exposes the stage sentinel and the bad-request kind.
func (e *ParseError) Unwrap() []error {
	return []error{e.err, serrors.ErrBadRequest}
}

// ParseOptions controls how trailing content after the identifier is treated.
type ParseOptions struct {
	// Strict rejects trailing content that does not begin with '&'.
	Strict bool
}

// ParseVideoID extracts the video identifier from input, discarding any
// content that follows the identifier.
func ParseVideoID(input string) (VideoID, error) {
	return ParseOptions{}.Parse(input)
}

// ParseVideoIDStrict is like ParseVideoID but fails with ErrTrailingGarbage
// when the identifier is followed by anything other than end of input or a
// '&'-separated query continuation.
func ParseVideoIDStrict(input string) (VideoID, error) {
	return ParseOptions{Strict: true}.Parse(input)
}

// Parse runs the stages in order over input. It is safe for concurrent use.
func (o ParseOptions) Parse(input string) (VideoID, error) {
	pos, ok := matchAny(input, 0, protocols[:])
	if !ok {
		return VideoID{}, &ParseError{Stage: StageProtocol, Offset: 0, Input: input, err: ErrMissingProtocol}
	}

	if strings.HasPrefix(input[pos:], subdomain) {
		pos += len(subdomain)
	}

	pos, ok = matchAny(input, pos, shapes[:])
	if !ok {
		return VideoID{}, &ParseError{Stage: StageHostPath, Offset: pos, Input: input, err: ErrUnrecognizedURLShape}
	}

	end := pos
	for end < len(input) && isIDByte(input[end]) {
		end++
	}
	if end == pos {
		return VideoID{}, &ParseError{Stage: StageIdentifier, Offset: pos, Input: input, err: ErrEmptyIdentifier}
	}

	if o.Strict && end < len(input) && input[end] != '&' {
		return VideoID{}, &ParseError{Stage: StageTrailing, Offset: end, Input: input, err: ErrTrailingGarbage}
	}

	return VideoID{id: input[pos:end]}, nil
}

// matchAny returns the offset just past the first literal in candidates that
// input has at pos.
func matchAny(input string, pos int, candidates []string) (int, bool) {
	rest := input[pos:]
	for _, c := range candidates {
		if strings.HasPrefix(rest, c) {
			return pos + len(c), true
		}
	}

	return pos, false
}

func isIDByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	default:
		return b == '-' || b == '_'
	}
}
