package main

import (
	"fmt"
	"os"

	"voice2text/cmd/s2t/cmd"
	"voice2text/internal/config"

	// Import providers to register them
	_ "voice2text/internal/app/api/openai/whisper"
	_ "voice2text/internal/app/api/stt_worker"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		// keep going; system-wide environment variables still apply
	}

	cmd.Execute()
}
