// Package llm defines the request and response types of a chat-style
// language model API together with the Client abstraction used to send them.
package llm

import (
	"context"
	"slices"
	"strings"
)

// DefaultMaxTokens bounds the length of a completion when the request does
// not say otherwise.
const DefaultMaxTokens = 1024

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Messages is an ordered conversation.
type Messages []Message

// AddUser returns a copy of m with a user message appended.
func (m Messages) AddUser(content string) Messages {
	return append(slices.Clip(m), Message{Role: RoleUser, Content: content})
}

// AddAssistant returns a copy of m with an assistant message appended.
func (m Messages) AddAssistant(content string) Messages {
	return append(slices.Clip(m), Message{Role: RoleAssistant, Content: content})
}

// MessageRequest is the body of a create-message call.
type MessageRequest struct {
	Model     string   `json:"model"`
	MaxTokens int      `json:"max_tokens"`
	Messages  Messages `json:"messages"`
}

// NewMessageRequest returns a request for model with DefaultMaxTokens and
// no messages.
func NewMessageRequest(model string) MessageRequest {
	return MessageRequest{Model: model, MaxTokens: DefaultMaxTokens, Messages: Messages{}}
}

// WithModel returns a copy of r using model.
func (r MessageRequest) WithModel(model string) MessageRequest {
	r.Model = model

	return r
}

// WithMaxTokens returns a copy of r limited to n output tokens.
func (r MessageRequest) WithMaxTokens(n int) MessageRequest {
	r.MaxTokens = n

	return r
}

// AddUser returns a copy of r with a user message appended.
func (r MessageRequest) AddUser(content string) MessageRequest {
	r.Messages = r.Messages.AddUser(content)

	return r
}

// AddAssistant returns a copy of r with an assistant message appended.
func (r MessageRequest) AddAssistant(content string) MessageRequest {
	r.Messages = r.Messages.AddAssistant(content)

	return r
}

// Content is one block of a model response.
type Content struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

// MessageResponse is the result of a create-message call.
type MessageResponse struct {
	ID      string    `json:"id,omitempty"`
	Role    Role      `json:"role"`
	Model   string    `json:"model,omitempty"`
	Content []Content `json:"content"`
}

// FirstText returns the trimmed text of the first content block and whether
// there was one.
func (r *MessageResponse) FirstText() (string, bool) {
	if r == nil || len(r.Content) == 0 {
		return "", false
	}

	return strings.TrimSpace(r.Content[0].Text), true
}

// Client sends message requests to a model provider.
//
//go:generate mockgen -package mockllm -source=llm.go -destination=mock/mockllm.go *
type Client interface {
	SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)
}
