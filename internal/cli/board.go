package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return tui.Run(s)
}
