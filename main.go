package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

func main() {
	log.SetPrefix("[GOL] ")

	// Load configuration - defaults when config.json doesn't exist, then GOL_* env, then flags
	config, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	parser := flaggy.NewParser("go-life")
	parser.Description = "Conway's Game of Life on a toroidal universe"
	config.Bind(parser)
	if err = parser.Parse(); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	universe, err := newUniverse(config, newLogger(config))
	if err != nil {
		log.Fatalf("create universe: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		console, err := view.NewConsole(universe, config.FrameRate, config.Colors)
		if err != nil {
			log.Fatalf("start console: %v", err)
		}
		if err = console.Run(ctx); err != nil {
			log.Fatalf("run console: %v", err)
		}
		return
	}

	displayGameInfo(config, universe)
	run(ctx, config, universe, model.NewTerminalRenderer(os.Stdout, config.Colors))
}

// run is the headless game loop
func run(ctx context.Context, config utils.Config, universe *model.Universe, renderer *model.TerminalRenderer) {
	var (
		stats          = utils.NewStats()
		history        = model.NewHistory(model.DefaultHistoryDepth)
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(universe, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(renderer, generation, livingCells, density, status, stats, lastRestartGen)
		if err := renderer.Display(universe); err != nil {
			log.Printf("display universe: %v", err)
		}

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, config); shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			restartGame(universe, history, config)
			stats.Restarts++
			lastRestartGen = generation
			stagnantCount = 0
		}

		universe.Tick()
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n", generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case <-time.After(config.FrameRate):
		}
	}
}
