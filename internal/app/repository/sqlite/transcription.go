package sqlite

import (
	"fmt"

	"voice2text/internal/app/model"
)

const selectColumns = `id, user, backend, model, language, file_name,
		audio_duration, transcription, last_conversion_time, has_error, error_message`

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = ? AND has_error = 0`
	var id int
	err := sdb.db.QueryRow(query, fileName).Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) Record(t model.Transcription) error {
	insertSQL := `INSERT INTO transcriptions
		(user, backend, model, language, file_name, audio_duration, transcription,
		 last_conversion_time, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := sdb.db.Exec(insertSQL,
		t.User, t.Backend, t.Model, t.Language, t.FileName, t.AudioDuration,
		t.Transcription, t.LastConversionTime, boolToInt(t.HasError), t.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert transcription: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAllByUser(user string) ([]model.Transcription, error) {
	query := `SELECT ` + selectColumns + `
		FROM transcriptions
		WHERE has_error = 0 AND user = ?
		ORDER BY last_conversion_time DESC`
	rows, err := sdb.db.Query(query, user)
	if err != nil {
		return nil, fmt.Errorf("query transcriptions: %w", err)
	}
	defer rows.Close()
	return scanTranscriptions(rows)
}

func (sdb *SQLiteDB) GetRecent(limit int) ([]model.Transcription, error) {
	query := `SELECT ` + selectColumns + `
		FROM transcriptions
		ORDER BY last_conversion_time DESC
		LIMIT ?`
	rows, err := sdb.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query transcriptions: %w", err)
	}
	defer rows.Close()
	return scanTranscriptions(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTranscriptions(rows rowScanner) ([]model.Transcription, error) {
	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		var hasError int
		err := rows.Scan(&t.ID, &t.User, &t.Backend, &t.Model, &t.Language,
			&t.FileName, &t.AudioDuration, &t.Transcription,
			&t.LastConversionTime, &hasError, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("scan transcription: %w", err)
		}
		t.HasError = hasError != 0
		transcriptions = append(transcriptions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transcriptions, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
