package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lifegrid/internal/config"
	"github.com/udisondev/lifegrid/internal/driver"
	"github.com/udisondev/lifegrid/internal/engine"
	"github.com/udisondev/lifegrid/internal/layout"
	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

const DefaultConfigPath = "config/simulation.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := flag.String("config", DefaultConfigPath, "path to simulation config")
	steps := flag.Int("steps", 0, "run N turns without a ticker and exit")
	flag.Parse()

	path := *cfgPath
	if p := os.Getenv("LIFESIM_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.LoadSimulation(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	rules := engine.Rules{
		StartingLifeEnergy:   cfg.StartingLifeEnergy,
		ReproduceThreshold:   cfg.ReproduceThreshold,
		BloomNeighborCount:   cfg.BloomNeighborCount,
		BloomEnergyThreshold: cfg.BloomEnergyThreshold,
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	start, err := initialWorld(cfg, rules)
	if err != nil {
		return fmt.Errorf("building initial world: %w", err)
	}

	slog.Info("lifesim starting",
		"grid_size", start.Size(),
		"layout", cfg.LayoutPath,
		"log_level", cfg.LogLevel)

	runner := driver.New(engine.New(rules), start, driver.Options{
		TickInterval:    cfg.TickInterval(),
		MaxTurns:        cfg.MaxTurns,
		GrowthChance:    cfg.GrowthChance,
		GrowthMaxAmount: cfg.GrowthMaxAmount,
		Seed:            cfg.Seed,
	})

	if *steps > 0 {
		if err := runner.RunTurns(*steps); err != nil {
			return err
		}
		final, turn := runner.Snapshot()
		fmt.Printf("after turn %d:\n%s\n", turn, final)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Start(ctx)
	})
	return g.Wait()
}

// initialWorld builds the starting grid: from the configured layout file
// when one is set, otherwise one organism in the center with resources
// scattered by the configured seed.
func initialWorld(cfg config.Simulation, rules engine.Rules) (world.World, error) {
	if cfg.LayoutPath != "" {
		f, err := layout.ParseFile(cfg.LayoutPath)
		if err != nil {
			return world.World{}, err
		}
		return f.BuildWorld()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	w := world.New(cfg.GridSize)
	center := model.NewLocation(cfg.GridSize/2, cfg.GridSize/2)
	w.Put(center, model.NewLife(rules.StartingLifeEnergy))
	for i := 0; i < cfg.GridSize; i++ {
		loc := model.NewLocation(rng.Intn(cfg.GridSize), rng.Intn(cfg.GridSize))
		if !w.Get(loc).IsEmpty() {
			continue
		}
		w.Put(loc, model.NewResource(1+rng.Intn(9)))
	}
	return w, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
