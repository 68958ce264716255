package model

import "time"

// Transcription is one row of transcription history. FileName is empty for
// live microphone captures.
type Transcription struct {
	ID                 int
	User               string
	Backend            string
	Model              string
	Language           string
	FileName           string
	AudioDuration      float64
	Transcription      string
	LastConversionTime time.Time
	HasError           bool
	ErrorMessage       string
}
