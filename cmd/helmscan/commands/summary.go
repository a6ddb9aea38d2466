package commands

import (
	"flag"
	"fmt"
	"io"
)

// SummaryOptions configures the summary command.
type SummaryOptions struct {
	Config string
	File   string
}

// RunSummary decodes the project export and prints its counts, metadata
// and decode warnings in a human-readable form.
func RunSummary(args []string, stdout, stderr io.Writer) int {
	opts, err := parseSummaryArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.File == "" {
		fmt.Fprintln(stderr, "Error: no file specified")
		printSummaryUsage(stderr)
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

	project, err := parser.ParseProject(data)
	if err != nil {
		logger.Error("decode failed", "file", opts.File, "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	fmt.Fprintf(stdout, "Project: %s\n", opts.File)
	if meta := project.Metadata; meta != nil {
		if meta.Firmware != "" {
			fmt.Fprintf(stdout, "  Firmware:       %s\n", meta.Firmware)
		}
		if meta.StudioVersion != "" {
			fmt.Fprintf(stdout, "  Studio version: %s\n", meta.StudioVersion)
		}
		if meta.SavedAtUTC != "" {
			fmt.Fprintf(stdout, "  Saved at:       %s\n", meta.SavedAtUTC)
		}
	}

	if project.MasterDevice >= 0 {
		fmt.Fprintf(stdout, "  Master device:  unit %d\n", project.MasterDevice)
	} else {
		fmt.Fprintln(stdout, "  Master device:  none")
	}

	s := project.Statistics
	fmt.Fprintf(stdout, "  Units:          %d\n", s.Units)
	fmt.Fprintf(stdout, "  Channels:       %d\n", s.Channels)
	fmt.Fprintf(stdout, "  Schemas:        %d\n", s.Schemas)
	fmt.Fprintf(stdout, "  Components:     %d (%d skipped)\n", s.Components, s.SkippedComponents)
	fmt.Fprintf(stdout, "  Alarms:         %d\n", s.Alarms)
	fmt.Fprintf(stdout, "  Memory entries: %d\n", s.MemoryEntries)

	if len(project.Warnings) > 0 {
		fmt.Fprintf(stdout, "Warnings (%d):\n", len(project.Warnings))
		for _, w := range project.Warnings {
			fmt.Fprintf(stdout, "  [%s] %s\n", w.Code, w.Message)
		}
	}

	return exitSuccess
}

func parseSummaryArgs(args []string, stderr io.Writer) (SummaryOptions, error) {
	var opts SummaryOptions

	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Config, "config", "", "path to config file")
	fs.Usage = func() { printSummaryUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	return opts, nil
}

func printSummaryUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: helmscan summary [options] <file>

Options:
  --config <path>  Load configuration from a YAML file`)
}
