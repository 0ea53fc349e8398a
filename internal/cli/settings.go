package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show settings",
	RunE:  runSettingsShow,
}

var settingsSetOperatorCmd = &cobra.Command{
	Use:   "set-operator [name]",
	Short: "Set the operator name stamped on audit entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetOperator,
}

func init() {
	settingsCmd.AddCommand(settingsSetOperatorCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleLabel.Render("Operator:"), settings.Operator)
	fmt.Printf("%s %s\n", styleLabel.Render("Theme:"), settings.Theme)
	return nil
}

func runSettingsSetOperator(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	settings.Operator = args[0]
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("%s\n", styleSuccess.Render("Operator set to "+args[0]))
	return nil
}
