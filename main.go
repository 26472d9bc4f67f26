package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultConfigFile = "config.json"

	// unset marks a numeric flag that was not given on the command line
	unset = -1
)

// cliOptions holds the command line flags. Empty strings, false and unset leave the config untouched.
type cliOptions struct {
	configFile  string
	pattern     string
	patternFile string
	generations int
	interval    time.Duration
	parallel    bool
	quiet       bool
}

func newCLIOptions() cliOptions {
	return cliOptions{
		configFile:  defaultConfigFile,
		generations: unset,
		interval:    unset,
	}
}

func parseFlags() cliOptions {
	opts := newCLIOptions()

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life over a fixed domain")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configFile, "c", "config", "JSON configuration file")
	flaggy.String(&opts.pattern, "p", "pattern", "Built-in pattern ["+strings.Join(utils.BuiltinPatternNames(), "|")+"]")
	flaggy.String(&opts.patternFile, "f", "file", "Pattern file, one row per line ('O' alive, '.' dead)")
	flaggy.Int(&opts.generations, "g", "generations", "Limit the simulation to this many generations, 0 for no limit")
	flaggy.Duration(&opts.interval, "i", "interval", "Interval between generations, for example 150ms or 0s")
	flaggy.Bool(&opts.parallel, "P", "parallel", "Step generations with one worker per CPU")
	flaggy.Bool(&opts.quiet, "q", "quiet", "Only print the final world and statistics")

	flaggy.Parse()
	return opts
}

// applyFlags overrides config values with the flags that were set
func applyFlags(config utils.Config, opts cliOptions) utils.Config {
	if opts.pattern != "" {
		config.Pattern = opts.pattern
		config.PatternFile = ""
	}
	if opts.patternFile != "" {
		config.PatternFile = opts.patternFile
	}
	if opts.generations != unset {
		config.MaxGenerations = opts.generations
	}
	if opts.interval != unset {
		config.FrameRate = opts.interval
	}
	if opts.parallel {
		config.UseParallel = true
	}
	if opts.quiet {
		config.Quiet = true
	}
	return config
}

func main() {
	opts := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if opts.configFile != defaultConfigFile {
			fatal(err)
		}
		config = utils.DefaultConfig()
	}
	config = applyFlags(config, opts)

	rule, err := config.Validate()
	if err != nil {
		fatal(err)
	}

	world, err := initializeWorld(config, rule)
	if err != nil {
		fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, os.Stdout, config, world)
	stop()
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, newAurora(os.Stderr, false).Red(err))
	os.Exit(1)
}
