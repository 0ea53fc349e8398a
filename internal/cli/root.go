// Package cli implements the mes CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/config"
	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mes",
	Short: "Track warehouse receiving, inventory and shipment tasks",
	Long: `MES tracks warehouse tasks: picking, shipment and write-off jobs.
Tasks carry an append-only audit history and live in a local snapshot.`,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore loads settings and the persisted snapshot and returns a
// ready-to-use store.
func openStore() (*store.Store, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	gateway, err := config.DefaultGateway()
	if err != nil {
		return nil, err
	}

	s := store.New(gateway, settings.Operator)
	// Load warns and starts empty on a corrupt snapshot.
	_ = s.Load()
	return s, nil
}
