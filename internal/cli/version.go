package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mes %s (%s, built %s)\n",
			buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
	},
}
