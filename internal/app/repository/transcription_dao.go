package repository

import (
	"voice2text/internal/app/model"
)

// TranscriptionDAO persists transcription history.
type TranscriptionDAO interface {
	Close() error

	// GetAllByUser returns every successful transcription for a user,
	// newest first.
	GetAllByUser(user string) ([]model.Transcription, error)

	// GetRecent returns the most recent transcriptions across all users.
	GetRecent(limit int) ([]model.Transcription, error)

	// CheckIfFileProcessed returns the row id of a prior successful
	// conversion of fileName, or an error when none exists.
	CheckIfFileProcessed(fileName string) (int, error)

	// Record inserts one history row.
	Record(t model.Transcription) error
}
