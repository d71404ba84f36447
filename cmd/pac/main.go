// Command pac encodes and decodes Personal Address Codes.
//
// Usage:
//
//	pac encode --lat 31.2357 --lon 30.0444 --floor 3 --apartment 02
//	pac decode "STT3-EWM9-U / F3-A02"
//	pac validate stt3 ewm9 u
//
// Settings can also come from a config file (--config) or PAC_* environment
// variables, e.g. PAC_PRECISION=9.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/andreiashu/pac/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err := root.Execute(); err != nil {
		if !errors.Is(err, cli.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
