package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/model"
)

type stubRunner struct {
	result       stt_worker.Result
	lastOverride stt_worker.Config
	lastAudio    string
	captured     bool
	history      []model.Transcription
}

func (s *stubRunner) Capture(ctx context.Context, override stt_worker.Config, user string, save bool) stt_worker.Result {
	s.captured = true
	s.lastOverride = override
	return s.result
}

func (s *stubRunner) TranscribeFile(ctx context.Context, audioPath string, override stt_worker.Config, user string, save bool) stt_worker.Result {
	s.lastAudio = audioPath
	s.lastOverride = override
	return s.result
}

func (s *stubRunner) History(user string, limit int) ([]model.Transcription, error) {
	return s.history, nil
}

type stubLister struct {
	backends []string
}

func (s *stubLister) List(ctx context.Context) []string {
	return s.backends
}

func newTestRouter(runner *stubRunner, lister *stubLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/transcriptions", NewTranscriptionHandler(runner).Transcribe)
	router.GET("/transcriptions", NewTranscriptionHandler(runner).List)
	router.GET("/backends", NewBackendHandler(lister).List)
	return router
}

func TestTranscribeCapture(t *testing.T) {
	runner := &stubRunner{result: stt_worker.Result{
		Success: true, Text: "hello", Backend: "moonshine", Model: "tiny",
	}}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	body := `{"backend":"moonshine","max_duration":10}`
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, runner.captured)
	assert.Equal(t, "moonshine", runner.lastOverride.Backend)
	assert.Equal(t, 10, runner.lastOverride.MaxDuration)

	var result stt_worker.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, "hello", result.Text)
}

func TestTranscribeFileRoute(t *testing.T) {
	runner := &stubRunner{result: stt_worker.Result{Success: true, Text: "from file"}}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	body := `{"audio_file":"/tmp/a.wav"}`
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "/tmp/a.wav", runner.lastAudio)
	assert.False(t, runner.captured)
}

func TestTranscribeWorkerFailure(t *testing.T) {
	runner := &stubRunner{result: stt_worker.Failure("mic not found")}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "mic not found")
}

func TestTranscribeBadRequest(t *testing.T) {
	router := newTestRouter(&stubRunner{}, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTranscribeNegativeDuration(t *testing.T) {
	runner := &stubRunner{}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(`{"max_duration":-5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "must not be negative")
	assert.False(t, runner.captured)
}

func TestTranscribeZeroDurationMeansUnset(t *testing.T) {
	runner := &stubRunner{result: stt_worker.Result{Success: true, Text: "ok"}}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcriptions", strings.NewReader(`{"max_duration":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, runner.captured)
	assert.Equal(t, 0, runner.lastOverride.MaxDuration)
}

func TestListTranscriptions(t *testing.T) {
	runner := &stubRunner{history: []model.Transcription{
		{
			ID:                 1,
			User:               "alice",
			Backend:            "whisper",
			Transcription:      "hello world",
			LastConversionTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}}
	router := newTestRouter(runner, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcriptions?user=alice", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Transcriptions []TranscriptionRow `json:"transcriptions"`
		Count          int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, "hello world", payload.Transcriptions[0].Text)
}

func TestListTranscriptionsBadLimit(t *testing.T) {
	router := newTestRouter(&stubRunner{}, &stubLister{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcriptions?limit=lots", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListBackends(t *testing.T) {
	router := newTestRouter(&stubRunner{}, &stubLister{backends: []string{"moonshine", "whisper"}})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/backends", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		AvailableBackends []string `json:"available_backends"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, []string{"moonshine", "whisper"}, payload.AvailableBackends)
}

func TestListBackendsEmpty(t *testing.T) {
	router := newTestRouter(&stubRunner{}, &stubLister{backends: []string{}})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/backends", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"available_backends":[]`)
}
