package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"voice2text/internal/app"
	"voice2text/internal/app/converter/export"
)

var (
	user           string
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&user, "user", "n", "", "export this user's transcriptions")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "path of the xlsx file to write")

	Cmd.MarkFlagRequired("user")
	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's transcription history to xlsx",
	Run: func(cmd *cobra.Command, args []string) {
		dao := app.InitializeTranscriptionDAO()
		defer dao.Close()

		transcriptions, err := dao.GetAllByUser(user)
		if err != nil {
			log.Fatalln(err)
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("Export finished: %s (%d rows)\n", outputFilePath, len(transcriptions))
	},
}
