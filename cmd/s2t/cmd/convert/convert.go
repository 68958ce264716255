package convert

import (
	"log"

	"github.com/spf13/cobra"

	"voice2text/internal/app"
	"voice2text/internal/app/converter"
)

var (
	user      string
	audioDir  string
	extension string
	limit     int
	parallel  int
	progress  bool
)

func init() {
	Cmd.Flags().StringVarP(&user, "user", "n", "", "user name the converted files are recorded under")
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "a", "", "directory containing the audio files to transcribe")
	Cmd.Flags().StringVarP(&extension, "extension", "e", "", "only convert files with this extension (default: common audio types)")
	Cmd.Flags().IntVarP(&limit, "limit", "c", 0, "maximum number of files to convert this run (0 = all)")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of concurrent worker processes")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress bar even without a terminal")

	Cmd.MarkFlagRequired("user")
	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Batch-transcribe the audio files in a directory",
	Long: `Batch-transcribe the audio files in a directory.

- Files already converted successfully are skipped
- Each file runs through its own worker process
- Results, including failures, are saved to the sqlite history`,
	Run: func(cmd *cobra.Command, args []string) {
		batch := app.InitializeConverter()
		defer batch.Close()

		err := batch.ConvertDirectory(converter.Options{
			User:      user,
			InputDir:  audioDir,
			Extension: extension,
			Limit:     limit,
			Parallel:  parallel,
			Progress: converter.ProgressConfig{
				Enabled: converter.ShouldShowProgress(progress),
			},
		})
		if err != nil {
			log.Fatalln(err)
		}
	},
}
