package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/config"
)

var initSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSample, "sample", false, "seed sample tasks when the store is empty")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.EnsureDataDir(); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	if initSample {
		s, err := openStore()
		if err != nil {
			return err
		}
		if !s.Empty() {
			fmt.Println(styleHint.Render("Store is not empty; sample data skipped."))
		} else if err := s.SeedSampleData(); err != nil {
			return err
		}
	}

	dir, err := config.DataDir()
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", styleSuccess.Render("Initialized "+dir))
	return nil
}
