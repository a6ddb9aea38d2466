package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/tmkeel/helmscan/internal/nxtimport"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Config string
	JSON   bool
	File   string
}

// RunValidate runs the structural checks against a project export and
// reports every violation. A structurally hopeless file is a validation
// result, not a command error.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	_, logger, parser, err := setup(opts.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := readProjectFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	result := parser.Validate(data)
	logger.Info("validation complete",
		"file", opts.File,
		"valid", result.Valid,
		"violations", len(result.Violations))

	if opts.JSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(output))
	} else {
		printValidationResult(stdout, opts.File, result)
	}

	if !result.Valid {
		return exitValidation
	}
	return exitSuccess
}

func parseValidateArgs(args []string, stderr io.Writer) (ValidateOptions, error) {
	var opts ValidateOptions

	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Config, "config", "", "path to config file")
	fs.BoolVar(&opts.JSON, "json", false, "emit the result as JSON")
	fs.Usage = func() { printValidateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printValidationResult(w io.Writer, file string, result nxtimport.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(w, "%s: OK\n", file)
		return
	}
	fmt.Fprintf(w, "%s: INVALID\n", file)
	for _, v := range result.Violations {
		fmt.Fprintf(w, "  [%s] %s\n", v.Code, v.Message)
	}
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: helmscan validate [options] <file>

Options:
  --config <path>  Load configuration from a YAML file
  --json           Emit the result as JSON`)
}
