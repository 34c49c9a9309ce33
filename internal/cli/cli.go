// Package cli parses the achievement-hunter command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

type Command string

const (
	CommandGetAchievements Command = "get-achievements"
	CommandServe           Command = "serve"
	CommandInit            Command = "init"
)

var aliases = map[string]Command{
	"get-achievements": CommandGetAchievements,
	"get":              CommandGetAchievements,
	"serve":            CommandServe,
	"init":             CommandInit,
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type Options struct {
	Command     Command
	ConfigPath  string
	Verbose     bool
	Game        string
	MetricsFile string
	Addr        string
	CORSOrigins []string
	APIKey      string
	UserID      string
}

const usage = `
achievement-hunter - browse your Steam achievements.

Usage:
  achievement-hunter [options] <command>

Commands:
  get-achievements, get   Choose one of your games and show its achievements
  serve                   Serve games and achievements over HTTP
  init                    Write a config file (needs --api-key and --user-id)

Options:
`

// Parse processes command-line arguments. It returns the parsed options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := pflag.NewFlagSet("achievement-hunter", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	opts := &Options{}
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the config file (default ~/.config/achievement_hunter/config.toml)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug output to stderr")
	fs.StringVarP(&opts.Game, "game", "g", "", "Pick the game closest to this name instead of prompting")
	fs.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command")
	fs.StringVar(&opts.Addr, "addr", ":8000", "Listen address for serve")
	fs.StringSliceVar(&opts.CORSOrigins, "cors-origin", nil, "Origin allowed to call the serve API from a browser (repeatable)")
	fs.StringVar(&opts.APIKey, "api-key", "", "Steam Web API key for init")
	fs.StringVar(&opts.UserID, "user-id", "", "Steam ID (64-bit) for init")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: "no command chosen"}
	}
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args()[1:])}
	}

	cmd, ok := aliases[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid command chosen: %q", fs.Arg(0))}
	}
	opts.Command = cmd

	if cmd == CommandInit && (opts.APIKey == "" || opts.UserID == "") {
		return nil, false, &ExitError{Code: 2, Message: "init needs both --api-key and --user-id"}
	}

	return opts, false, nil
}
