package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

const appName = "minigrep"

func main() {
	os.Exit(run(os.Args, config.OSEnvironment{}, os.Stdout, os.Stderr))
}

// run parses args, performs the search and returns the process exit code.
func run(args []string, env config.Environment, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New(appName, "Print the lines of a file that contain a query. Set CASE_INSENSITIVE to ignore case.")
	kingpinApp.ErrorWriter(stderr)
	positional := kingpinApp.Arg("args", "<query> <filename>").Strings()

	program, rest := appName, []string(nil)
	if len(args) > 0 {
		program, rest = args[0], args[1:]
	}

	// Every token is positional: no flags, no @file expansion.
	kingpin.EnableFileExpansion = false
	if _, err := kingpinApp.Parse(append([]string{"--"}, rest...)); err != nil {
		kingpinApp.Errorf("%v", err)
		return 1
	}

	cfg, err := config.Resolve(append([]string{program}, *positional...), env)
	if err != nil {
		kingpinApp.Errorf("problem parsing arguments: %v", err)
		return 1
	}

	settings, err := config.LoadSettings(env)
	if err != nil {
		kingpinApp.Errorf("failed to load configuration: %v", err)
		return 1
	}

	logger, err := logging.New(settings)
	if err != nil {
		kingpinApp.Errorf("failed to initialize logger: %v", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Debug("configuration resolved",
		zap.String("query", cfg.Query),
		zap.String("file", cfg.Filename),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
	)

	if err := application.New(cfg, logger, application.WithOutput(stdout)).Run(); err != nil {
		kingpinApp.Errorf("application error: %v", err)
		return 1
	}
	return 0
}
