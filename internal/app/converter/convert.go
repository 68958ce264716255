package converter

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/samber/lo"

	"voice2text/internal/app/api"
	"voice2text/internal/app/model"
	"voice2text/internal/app/repository"
	"voice2text/internal/app/util/files"
)

// Converter batch-transcribes audio files and records the outcome, success
// or failure, in the history database. Files already converted successfully
// are skipped.
type Converter struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
}

func NewConverter(transcriber api.Transcriber, db repository.TranscriptionDAO) *Converter {
	return &Converter{transcriber: transcriber, db: db}
}

func (c *Converter) Close() error {
	return c.db.Close()
}

// Options controls one batch run.
type Options struct {
	User      string
	InputDir  string
	Extension string
	// Limit caps how many files get converted this run; 0 means all.
	Limit int
	// Parallel bounds concurrent worker processes; values < 1 mean serial.
	Parallel int
	Progress ProgressConfig
}

// ConvertDirectory transcribes the unprocessed audio files under
// opts.InputDir. Each file spawns its own independent worker process; a
// failing file is recorded and does not stop the batch.
func (c *Converter) ConvertDirectory(opts Options) error {
	if opts.InputDir == "" {
		return fmt.Errorf("input directory required")
	}

	fileInfos, err := files.GetAudioFiles(opts.InputDir, opts.Extension)
	if err != nil {
		return err
	}

	toProcess := c.filterUnprocessed(fileInfos, opts.Limit)
	if len(toProcess) == 0 {
		log.Printf("No new files to convert in %s\n", opts.InputDir)
		return nil
	}

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	progress := NewProgressManager(opts.Progress)
	bar := progress.CreateBar(len(toProcess), "Transcribing")
	defer progress.Wait()

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)

	for _, file := range toProcess {
		wg.Add(1)
		go func(file model.FileInfo) {
			defer wg.Done()
			defer bar.Increment()

			sem <- struct{}{}
			c.convertOne(opts.User, file)
			<-sem
		}(file)
	}
	wg.Wait()
	bar.Complete()
	return nil
}

func (c *Converter) filterUnprocessed(fileInfos []model.FileInfo, limit int) []model.FileInfo {
	unprocessed := lo.Filter(fileInfos, func(file model.FileInfo, _ int) bool {
		if id, err := c.db.CheckIfFileProcessed(file.Name); err == nil {
			log.Printf("File %q already processed as row %d, skipping\n", file.Name, id)
			return false
		}
		return true
	})
	if limit > 0 && len(unprocessed) > limit {
		unprocessed = unprocessed[:limit]
	}
	return unprocessed
}

func (c *Converter) convertOne(user string, file model.FileInfo) {
	row := model.Transcription{
		User:               user,
		FileName:           file.Name,
		LastConversionTime: time.Now(),
	}

	text, err := c.transcriber.Transcript(file.FullPath)
	if err != nil {
		row.HasError = true
		row.ErrorMessage = err.Error()
		log.Printf("Transcription of %s failed: %v\n", file.Name, err)
	} else {
		row.Transcription = text
	}

	if err := c.db.Record(row); err != nil {
		log.Printf("Failed to record %s: %v\n", file.Name, err)
	}
}
