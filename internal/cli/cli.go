package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/schematicgo/internal/app"
	"github.com/specialistvlad/schematicgo/internal/hclconfig"
	"github.com/specialistvlad/schematicgo/internal/report"
	"github.com/specialistvlad/schematicgo/modules/gearratio"
	"github.com/specialistvlad/schematicgo/modules/partsum"
)

// aggregates lists the values accepted by -aggregate.
var aggregates = []string{gearratio.Name, partsum.Name}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("schematicgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
SchematicGo - Finds part numbers and gear ratios in engine schematics.

Usage:
  schematicgo [options] [INPUT]

Arguments:
  INPUT
    A schematic text file, a .hcl run file, or a directory of .hcl run files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the schematic or run file.")
	iFlag := flagSet.String("i", "", "Path to the schematic or run file (shorthand).")
	aggregateFlag := flagSet.String("aggregate", app.DefaultAggregate, "Aggregate to compute. Options: "+quoted(aggregates)+".")
	formatFlag := flagSet.String("format", app.DefaultFormat, "Result output format. Options: "+quoted(report.Formats)+".")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server in watch mode. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", app.DefaultWorkerCount, "Number of concurrent workers evaluating gears.")
	watchFlag := flagSet.Bool("watch", false, "Re-run whenever a schematic file changes.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	aggregate := strings.ToLower(*aggregateFlag)
	if !slices.Contains(aggregates, aggregate) {
		return nil, false, &ExitError{Code: 2, Message: "invalid aggregate: must be " + quoted(aggregates)}
	}

	format := strings.ToLower(*formatFlag)
	if !slices.Contains(report.Formats, format) {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be " + quoted(report.Formats)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid workers: must be at least 1, got %d", *workersFlag)}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:       path,
		RunFile:         hclconfig.IsRunFile(path),
		Aggregate:       aggregate,
		Format:          format,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
		Watch:           *watchFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// quoted renders options as 'a', 'b' or 'c'.
func quoted(options []string) string {
	q := make([]string, len(options))
	for i, o := range options {
		q[i] = "'" + o + "'"
	}
	if len(q) < 2 {
		return strings.Join(q, "")
	}
	return strings.Join(q[:len(q)-1], ", ") + " or " + q[len(q)-1]
}
