// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --data, --mode, --threshold, --max-attempts, --seed, --transcript, --responses, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	dataDir     string
	mode        string
	threshold   float64
	maxAttempts int
	seed        uint64
	transcript  string
	responses   string
	watch       bool
	theme       string
	verbose     bool
	version     bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	args := cliArgs{set: make(map[string]bool)}

	fs := flag.NewFlagSet("grocer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.dataDir, "data", "", "Directory with intents.csv, qa.csv and groceries.csv (default: built-in data)")
	fs.StringVar(&args.mode, "mode", "", "Front end: auto, line or tui")
	fs.Float64Var(&args.threshold, "threshold", 0, "Similarity threshold for intents and questions")
	fs.IntVar(&args.maxAttempts, "max-attempts", 0, "Maximum items offered per purchase")
	fs.Uint64Var(&args.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringVar(&args.transcript, "transcript", "", "Append a JSONL transcript to this file")
	fs.StringVar(&args.responses, "responses", "", "YAML file with canned replies")
	fs.BoolVar(&args.watch, "watch", false, "Reload the responses file when it changes")
	fs.StringVar(&args.theme, "theme", "", "Help panel style for the tui (auto, dark, light, notty)")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args, nil
}
