package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voice2text/cmd/s2t/cmd/backends"
	"voice2text/cmd/s2t/cmd/convert"
	"voice2text/cmd/s2t/cmd/export"
	"voice2text/cmd/s2t/cmd/record"
	"voice2text/cmd/s2t/cmd/serve"
	"voice2text/cmd/s2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "s2t",
	Short: "Speech to text from the microphone or audio files",
	Long: `Speech to text driven by a local Python worker.

- Record from the microphone and print the transcription
- Batch-convert audio files in a directory, results saved to sqlite
- Discover which recognition backends the worker can use`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(record.Cmd)
	rootCmd.AddCommand(backends.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
