// Package cli implements the pac command tree.
package cli

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac/internal/config"
	"github.com/andreiashu/pac/internal/logger"
)

// ErrInvalidInput is returned by commands after they have already shown the
// user why a code was rejected. Callers should exit non-zero without
// printing it again.
var ErrInvalidInput = errors.New("invalid input")

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// app is the state shared by all sub-commands of one invocation.
type app struct {
	build BuildInfo
	conf  *config.Config
	log   *logger.Logger

	configPath string
	verbose    bool
	jsonOut    bool
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "pac",
		Short: "Encode and decode Personal Address Codes",
		Long: `pac converts latitude/longitude pairs into short, checksummed
Personal Address Codes such as STT3-EWM9-U and back again.

A code may carry a floor/apartment suffix, e.g. "STT3-EWM9-U / F3-A02".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output results as JSON")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newValidateCmd(a),
		newNormalizeCmd(a),
		newDistanceCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and logger before any sub-command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.configPath != "" {
		a.conf, err = config.NewFromFile(filepath.Dir(a.configPath), filepath.Base(a.configPath))
	} else {
		a.conf, err = config.New()
	}
	if err != nil {
		return err
	}

	level := a.conf.LogLevel
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.NewLogger(level, cmd.ErrOrStderr())
	if a.conf.Output == config.OutputJSON {
		a.jsonOut = true
	}
	a.log.Debug("configuration loaded", slog.Int("precision", a.conf.Precision),
		slog.String("output", a.conf.Output), slog.String("file", a.configPath))
	return nil
}
