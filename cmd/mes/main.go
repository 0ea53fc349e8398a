// Package main is the entry point for the mes CLI and task board.
package main

import (
	"os"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
