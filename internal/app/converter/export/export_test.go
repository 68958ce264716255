package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"voice2text/internal/app/model"
)

func TestToExcel(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.xlsx")

	transcriptions := []model.Transcription{
		{
			ID:                 1,
			User:               "alice",
			Backend:            "moonshine",
			Model:              "tiny",
			FileName:           "a.wav",
			AudioDuration:      2.5,
			Transcription:      "hello",
			LastConversionTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:                 2,
			User:               "alice",
			FileName:           "b.wav",
			HasError:           true,
			ErrorMessage:       "mic not found",
			LastConversionTime: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, ToExcel(transcriptions, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "hello", sheet.Rows[1].Cells[7].Value)
	assert.Equal(t, "mic not found", sheet.Rows[2].Cells[8].Value)
}

func TestToExcelEmptyHistory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, ToExcel(nil, outputPath))

	file, err := xlsx.OpenFile(outputPath)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
}
