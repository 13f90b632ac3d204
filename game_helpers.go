package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// newUniverse builds the initial universe described by the configuration
func newUniverse(config utils.Config, logger model.Logger) (*model.Universe, error) {
	opts := []model.Option{model.WithDensity(config.RandomDensity)}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	if logger != nil {
		opts = append(opts, model.WithLogger(logger))
	}

	if !usesPatterns(config) {
		u, err := model.New(config.Width, config.Height, opts...)
		return u, errors.Wrap(err, "[newUniverse] failed to create random universe")
	}

	u, err := model.NewEmpty(config.Width, config.Height, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[newUniverse] failed to create empty universe")
	}
	seedPatterns(u, config)
	return u, nil
}

// newLogger returns a mutation logger when verbose output was requested
func newLogger(config utils.Config) model.Logger {
	if !config.Verbose || config.Interactive {
		return nil
	}
	return log.New(os.Stderr, "[GOL] ", log.LstdFlags)
}

func usesPatterns(config utils.Config) bool {
	return config.Gliders > 0 || config.Pulsars > 0
}

// seedPatterns spreads gliders along the main diagonal and pulsars along the anti-diagonal
func seedPatterns(u *model.Universe, config utils.Config) {
	w, h := u.Width(), u.Height()
	for i := range config.Gliders {
		u.PutGlider((i+1)*h/(config.Gliders+1), (i+1)*w/(config.Gliders+1))
	}
	for i := range config.Pulsars {
		u.PutPulsar((i+1)*h/(config.Pulsars+1), w-1-(i+1)*w/(config.Pulsars+1))
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, universe *model.Universe) {
	fmt.Printf("Universe: %dx%d | Initial living cells: %d | Interval: %v\n",
		universe.Width(), universe.Height(), universe.CountLiving(), config.FrameRate)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState records the current generation and returns status information
func updateGameState(
	universe *model.Universe,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := universe.CountLiving()
	density := 0.0
	if size := universe.Width() * universe.Height(); size > 0 {
		density = float64(livingCells) / float64(size) * 100
	}

	// Update performance stats
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	isStagnant := history.Observe(universe.Hash())

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	renderer *model.TerminalRenderer,
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	renderer.Status("Gen", "%d | Living: %d | Density: %.1f%% | Status: %s",
		generation, livingCells, density, status)
	renderer.Status("Performance", "%.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), stats.Restarts)

	// Show time since last restart
	if generation > lastRestartGen {
		renderer.Status("Since restart", "%d generations", generation-lastRestartGen)
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame repopulates the universe in place
func restartGame(universe *model.Universe, history *model.History, config utils.Config) {
	if usesPatterns(config) {
		universe.EmptyCells()
		seedPatterns(universe, config)
	} else {
		universe.Reset()
	}
	history.Clear()
}
