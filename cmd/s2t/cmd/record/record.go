package record

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voice2text/internal/app"
	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/app/model"
	"voice2text/internal/config"
)

var (
	backend     string
	modelSize   string
	language    string
	maxDuration int
	pythonPath  string
	scriptPath  string
	audioFile   string
	user        string
	save        bool
	jsonOutput  bool
)

func init() {
	Cmd.Flags().StringVarP(&backend, "backend", "b", "", "recognition backend (auto, moonshine, whisper, faster-whisper)")
	Cmd.Flags().StringVarP(&modelSize, "model", "m", "", "model size (tiny, base, small, medium, large)")
	Cmd.Flags().StringVarP(&language, "language", "l", "", "language code for transcription")
	Cmd.Flags().IntVarP(&maxDuration, "duration", "d", 0, "maximum recording duration in seconds")
	Cmd.Flags().StringVar(&pythonPath, "python", "", "path to the Python interpreter running the worker")
	Cmd.Flags().StringVar(&scriptPath, "script", "", "path to the worker script (overrides the bundled one)")
	Cmd.Flags().StringVarP(&audioFile, "audio-file", "f", "", "transcribe this audio file instead of recording")
	Cmd.Flags().StringVarP(&user, "user", "n", "", "user name attached to saved history rows")
	Cmd.Flags().BoolVarP(&save, "save", "s", false, "save the transcription to history")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw result as JSON")
}

// Cmd represents the record command
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Record speech from the microphone and print the transcription",
	Long: `Record speech from the microphone and print the transcription.

The worker records until silence or the duration limit, whichever comes
first. With --audio-file an existing recording is transcribed instead.
Flags override STT_* environment variables, which override built-in defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		envConfig, err := config.WorkerConfigFromEnv()
		if err != nil {
			log.Fatalf("Invalid environment configuration: %v\n", err)
		}

		flagConfig := stt_worker.Config{
			Backend:     backend,
			Model:       modelSize,
			Language:    language,
			MaxDuration: maxDuration,
			PythonPath:  pythonPath,
			ScriptPath:  scriptPath,
		}
		cfg := stt_worker.Merge(stt_worker.Merge(stt_worker.DefaultConfig(), envConfig), flagConfig)

		// Ctrl-C kills the worker process; there is no in-process timeout.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		transcriber := stt_worker.NewWorkerTranscriber(cfg)
		var result stt_worker.Result
		if audioFile != "" {
			result = transcriber.TranscribeFile(ctx, audioFile)
		} else {
			result = transcriber.Transcribe(ctx)
		}

		if save {
			saveResult(result, cfg)
		}

		if jsonOutput {
			encoded, err := json.Marshal(result)
			if err != nil {
				log.Fatalf("Failed to encode result: %v\n", err)
			}
			fmt.Println(string(encoded))
			if !result.Success {
				os.Exit(1)
			}
			return
		}

		if !result.Success {
			fmt.Fprintf(os.Stderr, "Transcription failed: %s\n", result.Error)
			os.Exit(1)
		}
		fmt.Println(result.Text)
	},
}

func saveResult(result stt_worker.Result, cfg stt_worker.Config) {
	dao := app.InitializeTranscriptionDAO()
	defer dao.Close()

	row := model.Transcription{
		User:               user,
		Backend:            result.Backend,
		Model:              result.Model,
		Language:           cfg.Language,
		FileName:           audioFile,
		Transcription:      result.Text,
		LastConversionTime: time.Now(),
	}
	if !result.Success {
		row.HasError = true
		row.ErrorMessage = result.Error
		row.Transcription = ""
	}
	if err := dao.Record(row); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save history: %v\n", err)
	}
}
