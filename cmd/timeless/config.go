package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/timeless/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config search
order and the --difficulty preset are applied. The output is valid YAML
and can be saved as ~/.timeless/config.yaml as a starting point.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		tuning, err := loadTuning()
		if err != nil {
			return err
		}
		data, err := config.Marshal(tuning)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
