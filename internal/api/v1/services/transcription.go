package services

import (
	"context"
	"time"

	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/model"
	"voice2text/internal/app/repository"
)

// TranscriptionService runs worker transcriptions for the API and records
// them in the history database on request.
type TranscriptionService struct {
	baseConfig stt_worker.Config
	db         repository.TranscriptionDAO
}

// NewTranscriptionService creates the service. baseConfig is the resolved
// defaults+environment configuration; per-request overrides merge on top.
func NewTranscriptionService(baseConfig stt_worker.Config, db repository.TranscriptionDAO) *TranscriptionService {
	return &TranscriptionService{baseConfig: baseConfig, db: db}
}

// Capture records from the microphone.
func (s *TranscriptionService) Capture(ctx context.Context, override stt_worker.Config, user string, save bool) stt_worker.Result {
	transcriber := stt_worker.NewWorkerTranscriber(stt_worker.Merge(s.baseConfig, override))
	result := transcriber.Transcribe(ctx)
	s.maybeSave(result, transcriber.Config(), user, "", save)
	return result
}

// TranscribeFile transcribes an audio file already on disk.
func (s *TranscriptionService) TranscribeFile(ctx context.Context, audioPath string, override stt_worker.Config, user string, save bool) stt_worker.Result {
	transcriber := stt_worker.NewWorkerTranscriber(stt_worker.Merge(s.baseConfig, override))
	result := transcriber.TranscribeFile(ctx, audioPath)
	s.maybeSave(result, transcriber.Config(), user, audioPath, save)
	return result
}

// History lists stored transcriptions, per user when user is non-empty.
func (s *TranscriptionService) History(user string, limit int) ([]model.Transcription, error) {
	if limit <= 0 {
		limit = 50
	}
	if user != "" {
		return s.db.GetAllByUser(user)
	}
	return s.db.GetRecent(limit)
}

func (s *TranscriptionService) maybeSave(result stt_worker.Result, cfg stt_worker.Config, user, fileName string, save bool) {
	if !save || s.db == nil {
		return
	}

	row := model.Transcription{
		User:               user,
		Backend:            result.Backend,
		Model:              result.Model,
		Language:           cfg.Language,
		FileName:           fileName,
		Transcription:      result.Text,
		LastConversionTime: time.Now(),
	}
	if !result.Success {
		row.HasError = true
		row.ErrorMessage = result.Error
		row.Transcription = ""
	}
	// History is best-effort for the API path; the transcription itself
	// already succeeded or failed on its own terms.
	_ = s.db.Record(row)
}
