package api

// Transcriber turns a single audio file into text. Implementations decide
// where the transcription happens, locally or against a remote service.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}
