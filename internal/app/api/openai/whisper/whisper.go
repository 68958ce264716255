package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber transcribes audio files through the OpenAI Whisper API.
// It only handles existing files; live microphone capture stays with the
// local worker provider.
type RemoteTranscriber struct {
	client   *openai.Client
	language string
}

// NewRemoteTranscriber creates a RemoteTranscriber. language may be empty,
// in which case the API autodetects.
func NewRemoteTranscriber(client *openai.Client, language string) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, language: language}
}

// Transcript implements api.Transcriber using the remote Whisper endpoint.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
		Language: rt.language,
	}
	resp, err := rt.client.CreateTranscription(context.Background(), req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}
	return resp.Text, nil
}
