package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeWorld builds generation 0 from the configured pattern
func initializeWorld(config utils.Config, rule rules.Rule) (*model.World, error) {
	var (
		table [][]model.Status
		err   error
	)
	if config.PatternFile != "" {
		table, err = utils.LoadPattern(config.PatternFile)
	} else {
		table, err = utils.BuiltinPattern(config.Pattern)
	}
	if err != nil {
		return nil, errors.Wrap(err, "[initializeWorld] failed to load pattern")
	}

	world, err := model.NewWorld(table, model.WithRule(rule))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeWorld] failed to create world")
	}
	return world, nil
}

// newAurora colours output only when it goes to a terminal and quiet is off
func newAurora(out io.Writer, quiet bool) aurora.Aurora {
	return aurora.NewAurora(!quiet && isTerminal(out))
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, world *model.World) {
	b := world.Bounds()
	fmt.Fprintf(out, "Rule: %s | Parallel: %v | Max generations: %d\n",
		world.Rule(), config.UseParallel, config.MaxGenerations)
	fmt.Fprintf(out, "Domain: %dx%d (%d cells) | Initial living cells: %d\n",
		b.MaxX-b.MinX+1, b.MaxY-b.MinY+1, world.Len(), world.LivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState updates the statistics and history and returns status information
func updateGameState(
	world *model.World,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
	au aurora.Aurora,
) (int, float64, string, bool) {
	livingCells := world.LivingCells()
	density := float64(livingCells) / float64(world.Len()) * 100

	stats.Update(world.GenerationCount(), livingCells, time.Since(lastFrameTime))

	// Compare against previous generations before recording this one
	period := history.Period(world)
	isStagnant := period > 0
	history.Record(world)

	status := au.Green("Active").String()
	switch {
	case period == 1:
		status = au.Yellow("Still life").String()
	case period > 1:
		status = au.Yellow(fmt.Sprintf("Oscillating (period %d)", period)).String()
	}
	if livingCells == 0 {
		status = au.Red("Extinct").String()
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, world *model.World, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		world.GenerationCount(), livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond(), stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// checkStopConditions determines if the simulation should stop
func checkStopConditions(world *model.World, livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && world.GenerationCount() >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// nextGeneration steps the world with the configured engine
func nextGeneration(ctx context.Context, world *model.World, config utils.Config) (*model.World, error) {
	if config.UseParallel {
		return world.CalculateNextGenerationParallel(ctx, config.Workers)
	}
	return world.CalculateNextGeneration()
}

// run advances the world until a stop condition is met or ctx is cancelled
func run(ctx context.Context, out io.Writer, config utils.Config, world *model.World) error {
	var (
		interactive   = isTerminal(out)
		au            = newAurora(out, config.Quiet)
		renderer      = model.NewTerminalRenderer(out)
		history       = model.NewHistory(0)
		stats         = utils.NewStats()
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	if !config.Quiet {
		displayGameInfo(out, config, world)
	}

	for {
		frameStart := time.Now()
		livingCells, density, status, isStagnant := updateGameState(world, history, lastFrameTime, stats, au)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if !config.Quiet {
			if interactive {
				if err := renderer.Clear(); err != nil {
					return err
				}
			}
			displayGameStatus(out, world, livingCells, density, status, stats)
			if err := renderer.Display(world); err != nil {
				return err
			}
		}

		if shouldStop, reason := checkStopConditions(world, livingCells, stagnantCount, config); shouldStop {
			if config.Quiet {
				displayGameStatus(out, world, livingCells, density, status, stats)
				if err := renderer.Display(world); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "\n%s\n", au.Cyan(fmt.Sprintf("🏁 Stopped: %s", reason)))
			return nil
		}

		next, err := nextGeneration(ctx, world, config)
		if err != nil {
			if errors.Cause(err) == context.Canceled {
				displayShutdown(out, world, stats, au)
				return nil
			}
			return errors.Wrapf(err, "[run] failed to compute generation %d", world.GenerationCount()+1)
		}
		world = next

		select {
		case <-ctx.Done():
			displayShutdown(out, world, stats, au)
			return nil
		case <-time.After(config.FrameRate):
		}
	}
}

func displayShutdown(out io.Writer, world *model.World, stats *utils.Stats, au aurora.Aurora) {
	fmt.Fprintf(out, "\n%s\n", au.Cyan("🛑 Shutting down gracefully..."))
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		world.GenerationCount(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond(), stats.AveragePopulation)
}
