package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/model"
)

// TranscriptionRunner is what the handler needs from the service layer.
type TranscriptionRunner interface {
	Capture(ctx context.Context, override stt_worker.Config, user string, save bool) stt_worker.Result
	TranscribeFile(ctx context.Context, audioPath string, override stt_worker.Config, user string, save bool) stt_worker.Result
	History(user string, limit int) ([]model.Transcription, error)
}

// TranscriptionHandler serves /api/v1/transcriptions.
type TranscriptionHandler struct {
	service TranscriptionRunner
}

func NewTranscriptionHandler(service TranscriptionRunner) *TranscriptionHandler {
	return &TranscriptionHandler{service: service}
}

// TranscribeRequest is the POST body. With AudioFile empty the worker
// records from the microphone.
type TranscribeRequest struct {
	AudioFile   string `json:"audio_file,omitempty"`
	Backend     string `json:"backend,omitempty"`
	Model       string `json:"model,omitempty"`
	Language    string `json:"language,omitempty"`
	MaxDuration int    `json:"max_duration,omitempty"`
	User        string `json:"user,omitempty"`
	Save        bool   `json:"save,omitempty"`
}

// TranscriptionRow is one history entry in API responses.
type TranscriptionRow struct {
	ID            int     `json:"id"`
	User          string  `json:"user"`
	Backend       string  `json:"backend,omitempty"`
	Model         string  `json:"model,omitempty"`
	Language      string  `json:"language,omitempty"`
	FileName      string  `json:"file_name,omitempty"`
	AudioDuration float64 `json:"audio_duration,omitempty"`
	Text          string  `json:"text,omitempty"`
	CreatedAt     string  `json:"created_at"`
	Error         string  `json:"error,omitempty"`
}

// Transcribe handles POST /transcriptions. A worker-reported failure is a
// 502: the API worked, the upstream transcription did not.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var req TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	// Zero means "not set" and falls through to the configured default.
	if req.MaxDuration < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "max_duration must not be negative"})
		return
	}

	override := stt_worker.Config{
		Backend:     req.Backend,
		Model:       req.Model,
		Language:    req.Language,
		MaxDuration: req.MaxDuration,
	}

	var result stt_worker.Result
	if req.AudioFile != "" {
		result = h.service.TranscribeFile(c.Request.Context(), req.AudioFile, override, req.User, req.Save)
	} else {
		result = h.service.Capture(c.Request.Context(), override, req.User, req.Save)
	}

	if !result.Success {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// List handles GET /transcriptions.
func (h *TranscriptionHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a non-negative integer"})
		return
	}

	transcriptions, err := h.service.History(c.Query("user"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	rows := lo.Map(transcriptions, func(t model.Transcription, _ int) TranscriptionRow {
		return TranscriptionRow{
			ID:            t.ID,
			User:          t.User,
			Backend:       t.Backend,
			Model:         t.Model,
			Language:      t.Language,
			FileName:      t.FileName,
			AudioDuration: t.AudioDuration,
			Text:          t.Transcription,
			CreatedAt:     t.LastConversionTime.Format(time.RFC3339),
			Error:         t.ErrorMessage,
		}
	})
	c.JSON(http.StatusOK, gin.H{"transcriptions": rows, "count": len(rows)})
}
