package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/logic"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Args:  cobra.NoArgs,
	Short: "Show the pending records without contacting the server",
	Long:  `Read and validate the CSV file and print the masked preview table. No network calls are made.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(configPath); err != nil {
			logrus.Error(err)
			newTerminalGate().Acknowledge("The preview could not be generated.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	records, err := logic.ReadRecords(cfg.CSVFile, cfg.CSVDelimiterRune())
	if err != nil {
		return err
	}
	logic.RenderPreview(os.Stdout, records)
	fmt.Printf("%d records ready for import.\n", len(records))
	return nil
}
