package openai

import (
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

// NewClientFromEnv builds an OpenAI client from OPENAI_API_KEY. The remote
// provider is the only consumer; the local worker path never needs a key.
func NewClientFromEnv() (*openai.Client, error) {
	token, ok := os.LookupEnv("OPENAI_API_KEY")
	if !ok || token == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return openai.NewClient(token), nil
}
