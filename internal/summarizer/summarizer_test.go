package summarizer_test

import (
	"context"
	"testing"

	"ytsum/internal/summarizer"
	"ytsum/pkg/domain"
	"ytsum/pkg/llm"
	"ytsum/pkg/serrors"

	mocktranscripts "ytsum/internal/transcripts/mock"
	mockllm "ytsum/pkg/llm/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const model = "claude-sonnet-4-5"

func textResponse(text string) *llm.MessageResponse {
	return &llm.MessageResponse{
		Role:    llm.RoleAssistant,
		Content: []llm.Content{{Type: "text", Text: text}},
	}
}

func TestPrompt(t *testing.T) {
	require.Equal(t, "Please provide a concise summary of the following text.", summarizer.Prompt(""))
	require.Equal(t, "Please provide a concise summary of the following text.", summarizer.Prompt("   "))
	require.Equal(t,
		"Please provide a concise summary of the following text. Focus on the key points.",
		summarizer.Prompt("Focus on the key points."))
}

func TestSummarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	s := summarizer.New(client, nil, summarizer.Options{Model: model})

	client.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.MessageRequest) (*llm.MessageResponse, error) {
			require.Equal(t, model, req.Model)
			require.Equal(t, llm.DefaultMaxTokens, req.MaxTokens)
			require.Equal(t, llm.Messages{
				{Role: llm.RoleUser, Content: summarizer.Prompt("in French")},
				{Role: llm.RoleUser, Content: "some long text"},
			}, req.Messages)

			return textResponse("  a summary \n"), nil
		})

	sum, err := s.Summarize(context.Background(), "\n some long text \n", "in French")
	require.NoError(t, err)
	require.Equal(t, &domain.Summary{Model: model, Text: "a summary", Source: domain.SourceText}, sum)
}

func TestSummarize_emptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := summarizer.New(mockllm.NewMockClient(ctrl), nil, summarizer.Options{Model: model})

	_, err := s.Summarize(context.Background(), " \n\t", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "no text provided to process", err.Error())
}

func TestSummarize_noContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	s := summarizer.New(client, nil, summarizer.Options{Model: model})

	client.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(&llm.MessageResponse{Role: llm.RoleAssistant}, nil)

	_, err := s.Summarize(context.Background(), "text", "")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Equal(t, "no summary returned from the API", err.Error())
}

func TestSummarize_clientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	s := summarizer.New(client, nil, summarizer.Options{Model: model, MaxTokens: 300})

	client.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.MessageRequest) (*llm.MessageResponse, error) {
			require.Equal(t, 300, req.MaxTokens)

			return nil, serrors.With(serrors.ErrUnauthorized, "bad key")
		})

	_, err := s.Summarize(context.Background(), "text", "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestSummarizeVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockllm.NewMockClient(ctrl)
	trs := mocktranscripts.NewMockService(ctrl)
	s := summarizer.New(client, trs, summarizer.Options{Model: model})

	const url = "https://youtu.be/dQw4w9WgXcQ"
	trs.EXPECT().Fetch(gomock.Any(), url, "en").
		Return(&domain.Transcript{VideoID: "dQw4w9WgXcQ", Language: "en", Text: "line one\nline two"}, nil)
	client.EXPECT().SendMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req llm.MessageRequest) (*llm.MessageResponse, error) {
			require.Equal(t, "line one\nline two", req.Messages[1].Content)

			resp := textResponse("video summary")
			resp.Model = "served-model"

			return resp, nil
		})

	sum, err := s.SummarizeVideo(context.Background(), url, "en", "")
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", sum.Source)
	require.Equal(t, "served-model", sum.Model)
	require.Equal(t, "video summary", sum.Text)
}

func TestSummarizeVideo_transcriptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	trs := mocktranscripts.NewMockService(ctrl)
	s := summarizer.New(mockllm.NewMockClient(ctrl), trs, summarizer.Options{Model: model})

	trs.EXPECT().Fetch(gomock.Any(), "bad", "").Return(nil, serrors.With(serrors.ErrBadRequest, "bad url"))

	_, err := s.SummarizeVideo(context.Background(), "bad", "", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
