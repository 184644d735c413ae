package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/functions"
	"github.com/ocstools/ncimport/handout"
	"github.com/ocstools/ncimport/logic"
)

var assumeYes bool

var importCmd = &cobra.Command{
	Use:   "import",
	Args:  cobra.NoArgs,
	Short: "Create all users and groups listed in the CSV file",
	Long: `Create all users and groups listed in the CSV file.

A preview of the pending records is shown first and the import only
starts after confirmation. For every successfully created user a
credential handout PDF with a login QR code is generated.`,
	Run: func(cmd *cobra.Command, args []string) {
		var gate logic.Gate = newTerminalGate()
		if assumeYes {
			gate = logic.AutoGate{}
		}
		if err := runImport(gate, configPath); err != nil {
			logrus.Error(err)
			gate.Acknowledge("The import was aborted. Accounts created before the failure still exist, nothing is rolled back.")
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the interactive confirmation")
	rootCmd.AddCommand(importCmd)
}

func runImport(gate logic.Gate, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.CSVFile); err != nil {
		return &config.ConfigurationError{Reason: fmt.Sprintf("csv file %s does not exist, save it there or adjust the config", cfg.CSVFile)}
	}

	records, err := logic.ReadRecords(cfg.CSVFile, cfg.CSVDelimiterRune())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found in %s", cfg.CSVFile)
	}

	logic.RenderPreview(os.Stdout, records)
	fmt.Println("\nPlease check carefully whether the users and groups above should be created like that.")
	if !cfg.GeneratePasswords {
		fmt.Println("ATTENTION: users without a password will receive an e-mail to set one themselves." +
			" Make sure every such user has a correct e-mail address.")
	}
	confirmed, err := gate.Confirm("Start the import?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Import cancelled.")
		return nil
	}

	for _, dir := range []string{cfg.OutputDir, cfg.TempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	client := functions.NewClient(cfg)
	emitter := handout.NewEmitter(cfg, client.BaseURL())
	pipeline := logic.NewPipeline(cfg, client, emitter)

	summary, runErr := pipeline.Run(records)
	// handouts of users created before a mid-run abort are kept
	if finErr := emitter.Finalize(); finErr != nil && runErr == nil {
		runErr = finErr
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("\nDone: %d users created, %d rejected by the server.\n", summary.Created, summary.Failed)
	fmt.Printf("Check the status codes above or in %s/output.log; the users should now exist on the server.\n", cfg.OutputDir)
	fmt.Println("A PDF with login info and QR code was generated for every created user.")
	fmt.Println("For security reasons: remove the admin credentials from your config file.")
	// successful runs wait for the operator too, so a window that
	// closes on exit does not swallow the summary
	gate.Acknowledge("")
	return nil
}
