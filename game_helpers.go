package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/life"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// newSeedBoard builds the starting board named by config.Seed
func newSeedBoard(config utils.Config) (*model.Board, error) {
	if config.Seed == utils.SeedDefault {
		return model.DefaultBoard(), nil
	}

	board, err := model.NewBoard(config.Height, config.Width)
	if err != nil {
		return nil, errors.Wrap(err, "[newSeedBoard]")
	}

	switch config.Seed {
	case utils.SeedBlinker:
		board.AddBlinker(config.Height/2-1, config.Width/2)
	case utils.SeedGlider:
		board.AddGlider(0, 0)
	case utils.SeedRandom:
		seed := config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		board.Randomize(config.RandomDensity, rand.New(rand.NewSource(seed)))
	default:
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[newSeedBoard] unknown seed %q", config.Seed)
	}
	return board, nil
}

func newPool(config utils.Config) *model.BoardPool {
	if !config.UseMemoryPool {
		return nil
	}
	return model.NewBoardPool()
}

// newStepper picks the transition engine named by config.Engine
func newStepper(config utils.Config, pool *model.BoardPool) life.Stepper {
	var opts []life.Option
	if pool != nil {
		opts = append(opts, life.WithPool(pool))
	}
	if config.Engine == utils.EngineFullScan {
		return life.NewFullScan(opts...)
	}
	return life.NewEngine(opts...)
}

// stopConditions turns config limits into driver stop conditions
func stopConditions(config utils.Config) []game.StopCondition {
	conds := []game.StopCondition{game.Extinct()}
	if config.StopWhenStagnant {
		conds = append(conds, game.Stagnant(config.StagnationThreshold))
	}
	if config.MaxGenerations > 0 {
		conds = append(conds, game.MaxGenerations(config.MaxGenerations))
	}
	return conds
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Engine: %s | Memory Pool: %v | Seed: %s\n",
		config.Engine, config.UseMemoryPool, config.Seed)
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		board.Rows(), board.Cols(), board.CountLiving())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}
