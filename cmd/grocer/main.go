// ABOUTME: CLI entry point for the grocery chatbot
// ABOUTME: Parses flags, loads config and data, then runs the line or full-screen front end

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/grocer-go/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/grocer-go/internal/config"
	"github.com/mauromedda/grocer-go/internal/dataset"
	"github.com/mauromedda/grocer-go/internal/dialogue"
	pilog "github.com/mauromedda/grocer-go/internal/log"
	"github.com/mauromedda/grocer-go/internal/mode/interactive/btea"
	"github.com/mauromedda/grocer-go/internal/mode/line"
	"github.com/mauromedda/grocer-go/internal/responses"
	"github.com/mauromedda/grocer-go/internal/session"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Intercept subcommands before flag parsing.
	if len(os.Args) > 1 {
		if handled, err := runSubcommand(os.Args[1], os.Args[2:]); handled {
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		}
	}

	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("grocer %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, args)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runSubcommand dispatches the non-chat commands. handled is false when name
// is not one of them.
func runSubcommand(name string, argv []string) (handled bool, err error) {
	switch name {
	case "catalog":
		return true, runCatalog(context.Background(), argv, os.Stdout, os.Stderr)
	case "transcript":
		return true, runTranscript(argv, os.Stdout, os.Stderr)
	}
	return false, nil
}

// run performs the full initialization sequence and dispatches to the selected mode.
func run(ctx context.Context, args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyCLIOverrides(cfg, args)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if cfg.Verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	mode := resolveMode(cfg.Mode, isTerminal(os.Stdin), isTerminal(os.Stdout))
	if mode == config.ModeTUI {
		// Log lines would corrupt the full-screen view.
		restore, err := logToFile()
		if err != nil {
			return err
		}
		defer restore()
	}

	corpus, err := dataset.Load(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	replies, err := loadResponses(cfg.ResponsesFile)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	pilog.Debug("seed %d", seed)

	var tr *session.Transcript
	if cfg.Transcript != "" {
		if tr, err = session.OpenTranscript(cfg.Transcript); err != nil {
			return err
		}
		defer func() {
			if err := tr.Close(); err != nil {
				pilog.Warn("closing transcript: %v", err)
			}
		}()
	}

	agent, err := dialogue.New(corpus, dialogue.Options{
		Threshold:   cfg.Threshold,
		MaxAttempts: cfg.MaxAttempts,
		Responses:   replies,
		RNG:         rand.New(rand.NewPCG(seed, seed>>1)),
		Seed:        seed,
		DataDir:     cfg.DataDir,
		Transcript:  tr,
	})
	if err != nil {
		return err
	}

	if cfg.WatchResponses && cfg.ResponsesFile != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watchResponses(watchCtx, cfg.ResponsesFile, agent)
	}

	pilog.Debug("mode %s", mode)
	if mode == config.ModeTUI {
		keys, err := config.LoadKeybindings(config.KeybindingsFile())
		if err != nil {
			pilog.Warn("keybindings: %v; using defaults", err)
			keys = config.NewKeybindings()
		}
		return btea.Run(ctx, agent, btea.Options{Keys: keys, Theme: cfg.Theme})
	}
	return line.Run(ctx, agent, os.Stdin, os.Stdout)
}

// applyCLIOverrides copies explicitly set flags over the loaded settings.
func applyCLIOverrides(s *config.Settings, args cliArgs) {
	if args.set["data"] {
		s.DataDir = args.dataDir
	}
	if args.set["mode"] {
		s.Mode = args.mode
	}
	if args.set["threshold"] {
		s.Threshold = args.threshold
	}
	if args.set["max-attempts"] {
		s.MaxAttempts = args.maxAttempts
	}
	if args.set["seed"] {
		s.Seed = args.seed
	}
	if args.set["transcript"] {
		s.Transcript = args.transcript
	}
	if args.set["responses"] {
		s.ResponsesFile = args.responses
	}
	if args.set["watch"] {
		s.WatchResponses = args.watch
	}
	if args.set["theme"] {
		s.Theme = args.theme
	}
	if args.set["verbose"] {
		s.Verbose = args.verbose
	}
}

// resolveMode turns "auto" (or unset) into a concrete front end.
func resolveMode(mode string, stdinTTY, stdoutTTY bool) string {
	switch mode {
	case config.ModeLine, config.ModeTUI:
		return mode
	}
	if stdinTTY && stdoutTTY {
		return config.ModeTUI
	}
	return config.ModeLine
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func loadResponses(path string) (responses.Set, error) {
	if path == "" {
		return responses.Default()
	}
	set, err := responses.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading responses: %w", err)
	}
	return set, nil
}

// logToFile sends log output to the global log file and returns a func
// that restores stderr logging.
func logToFile() (func(), error) {
	if err := config.EnsureDir(config.GlobalDir()); err != nil {
		return nil, fmt.Errorf("creating %s: %w", config.GlobalDir(), err)
	}
	f, err := os.OpenFile(config.LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := pilog.SetOutput(f)
	return func() {
		pilog.SetOutput(prev)
		f.Close()
	}, nil
}

func watchResponses(ctx context.Context, path string, agent *dialogue.Agent) {
	w := config.NewWatcher(config.DefaultWatchInterval, path)
	w.Run(ctx, func() {
		set, err := responses.Load(path)
		if err != nil {
			pilog.Warn("reloading responses: %v", err)
			return
		}
		agent.SetResponses(set)
		pilog.Info("reloaded responses from %s", path)
	})
}
