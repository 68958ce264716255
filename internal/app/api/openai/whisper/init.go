package whisper

import (
	"voice2text/internal/app/api"
	openaiclient "voice2text/internal/app/api/openai"
	"voice2text/internal/app/api/provider"
)

func init() {
	provider.Register("openai_whisper", createRemoteTranscriber)
}

func createRemoteTranscriber(settings map[string]interface{}) (api.Transcriber, error) {
	client, err := openaiclient.NewClientFromEnv()
	if err != nil {
		return nil, err
	}
	language, _ := settings["language"].(string)
	return NewRemoteTranscriber(client, language), nil
}
