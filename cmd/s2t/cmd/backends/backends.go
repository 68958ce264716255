package backends

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"voice2text/internal/app/api/stt_worker"
	"voice2text/internal/config"
)

var (
	pythonPath string
	jsonOutput bool
)

func init() {
	Cmd.Flags().StringVar(&pythonPath, "python", "", "path to the Python interpreter running the worker")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the list as JSON")
}

// Cmd represents the backends command
var Cmd = &cobra.Command{
	Use:   "backends",
	Short: "List the recognition backends the worker can use",
	Long: `List the recognition backends the worker can use.

The worker is probed on every run; an empty list means no recognition
package is importable in the worker's Python environment.`,
	Run: func(cmd *cobra.Command, args []string) {
		envConfig, err := config.WorkerConfigFromEnv()
		if err != nil {
			log.Fatalf("Invalid environment configuration: %v\n", err)
		}
		cfg := stt_worker.Merge(stt_worker.Merge(stt_worker.DefaultConfig(), envConfig),
			stt_worker.Config{PythonPath: pythonPath})

		available := stt_worker.ListBackends(cmd.Context(), cfg.PythonPath)

		if jsonOutput {
			encoded, err := json.Marshal(map[string][]string{"available_backends": available})
			if err != nil {
				log.Fatalf("Failed to encode backend list: %v\n", err)
			}
			fmt.Println(string(encoded))
			return
		}

		if len(available) == 0 {
			fmt.Fprintln(os.Stderr, "No backends available. Install moonshine-onnx, whisper, or faster-whisper.")
			return
		}
		for _, name := range available {
			fmt.Println(name)
		}
	},
}
