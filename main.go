package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - defaults apply when the file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %+v", err)
	}

	board, err := newSeedBoard(config)
	if err != nil {
		log.Fatalf("seed board: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		pool     = newPool(config)
		stats    = utils.NewStats()
		renderer = model.NewTerminalRenderer(os.Stdout, model.DetectPalette(config.Color, os.Stdout))
		sim      = game.New(newStepper(config, pool), renderer,
			game.WithInterval(config.FrameRate),
			game.WithStats(stats),
			game.WithPool(pool),
			game.WithStop(stopConditions(config)...),
		)
	)

	displayGameInfo(config, board)

	// The live-cell set is computed from the board once, at startup
	summary, err := sim.Run(ctx, board, board.LiveCells())
	if err != nil {
		log.Fatalf("run: %+v", err)
	}

	fmt.Printf("\nStopped after %d generations (%s) in %.1fs\n",
		summary.Generations, summary.Reason, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d births, %d deaths\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths)
}
