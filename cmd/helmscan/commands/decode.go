package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
)

// DecodeOptions configures the decode command.
type DecodeOptions struct {
	Config  string
	Compact bool
	File    string
}

// RunDecode decodes the full project export and emits it as JSON on
// stdout. Structural problems in the file are command errors here: a
// decode that cannot produce a model has nothing to print.
func RunDecode(args []string, stdout, stderr io.Writer) int {
	opts, err := parseDecodeArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printDecodeUsage(stderr)
		return exitCommandError
	}

	cfg, logger, parser, err := setup(opts.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := readProjectFile(opts.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	project, err := parser.ParseProject(data)
	if err != nil {
		logger.Error("decode failed", "file", opts.File, "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	logger.Info("project decoded",
		"file", opts.File,
		"units", project.Statistics.Units,
		"components", project.Statistics.Components,
		"warnings", len(project.Warnings))

	var output []byte
	if opts.Compact || cfg.Output.JSONIndent == "" {
		output, err = json.Marshal(project)
	} else {
		output, err = json.MarshalIndent(project, "", cfg.Output.JSONIndent)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: encoding project: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintln(stdout, string(output))

	return exitSuccess
}

func parseDecodeArgs(args []string, stderr io.Writer) (DecodeOptions, error) {
	var opts DecodeOptions

	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Config, "config", "", "path to config file")
	fs.BoolVar(&opts.Compact, "compact", false, "emit compact JSON")
	fs.Usage = func() { printDecodeUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: helmscan decode [options] <file>

Options:
  --config <path>  Load configuration from a YAML file
  --compact        Emit compact JSON instead of indented`)
}
