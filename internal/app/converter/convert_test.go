package converter

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice2text/internal/app/model"
)

type fakeTranscriber struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]string
}

func (f *fakeTranscriber) Transcript(inputFilePath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, filepath.Base(inputFilePath))
	if msg, ok := f.fail[filepath.Base(inputFilePath)]; ok {
		return "", errors.New(msg)
	}
	return "text of " + filepath.Base(inputFilePath), nil
}

type fakeDAO struct {
	mu        sync.Mutex
	processed map[string]int
	rows      []model.Transcription
}

func newFakeDAO() *fakeDAO {
	return &fakeDAO{processed: make(map[string]int)}
}

func (f *fakeDAO) Close() error { return nil }

func (f *fakeDAO) GetAllByUser(user string) ([]model.Transcription, error) { return nil, nil }

func (f *fakeDAO) GetRecent(limit int) ([]model.Transcription, error) { return nil, nil }

func (f *fakeDAO) CheckIfFileProcessed(fileName string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.processed[fileName]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

func (f *fakeDAO) Record(t model.Transcription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, t)
	return nil
}

func writeAudioFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func TestConvertDirectoryRecordsResults(t *testing.T) {
	dir := writeAudioFiles(t, "a.wav", "b.mp3")
	transcriber := &fakeTranscriber{}
	dao := newFakeDAO()

	c := NewConverter(transcriber, dao)
	err := c.ConvertDirectory(Options{User: "alice", InputDir: dir, Parallel: 2})
	require.NoError(t, err)

	require.Len(t, dao.rows, 2)
	for _, row := range dao.rows {
		assert.Equal(t, "alice", row.User)
		assert.False(t, row.HasError)
		assert.Equal(t, "text of "+row.FileName, row.Transcription)
	}
}

func TestConvertDirectorySkipsProcessed(t *testing.T) {
	dir := writeAudioFiles(t, "a.wav", "b.wav")
	transcriber := &fakeTranscriber{}
	dao := newFakeDAO()
	dao.processed["a.wav"] = 7

	c := NewConverter(transcriber, dao)
	require.NoError(t, c.ConvertDirectory(Options{User: "alice", InputDir: dir}))

	require.Len(t, dao.rows, 1)
	assert.Equal(t, "b.wav", dao.rows[0].FileName)
	assert.Equal(t, []string{"b.wav"}, transcriber.calls)
}

func TestConvertDirectoryRecordsFailures(t *testing.T) {
	dir := writeAudioFiles(t, "bad.wav")
	transcriber := &fakeTranscriber{fail: map[string]string{"bad.wav": "no STT backend available"}}
	dao := newFakeDAO()

	c := NewConverter(transcriber, dao)
	require.NoError(t, c.ConvertDirectory(Options{User: "alice", InputDir: dir}))

	require.Len(t, dao.rows, 1)
	assert.True(t, dao.rows[0].HasError)
	assert.Equal(t, "no STT backend available", dao.rows[0].ErrorMessage)
	assert.Empty(t, dao.rows[0].Transcription)
}

func TestConvertDirectoryHonorsLimit(t *testing.T) {
	dir := writeAudioFiles(t, "a.wav", "b.wav", "c.wav")
	transcriber := &fakeTranscriber{}
	dao := newFakeDAO()

	c := NewConverter(transcriber, dao)
	require.NoError(t, c.ConvertDirectory(Options{User: "alice", InputDir: dir, Limit: 2}))

	assert.Len(t, dao.rows, 2)
}

func TestConvertDirectoryMissingDir(t *testing.T) {
	c := NewConverter(&fakeTranscriber{}, newFakeDAO())

	assert.Error(t, c.ConvertDirectory(Options{InputDir: filepath.Join(t.TempDir(), "absent")}))
	assert.Error(t, c.ConvertDirectory(Options{}))
}
