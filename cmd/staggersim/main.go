package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/illiux/stagger/internal/clock"
	"github.com/illiux/stagger/internal/component"
	"github.com/illiux/stagger/internal/config"
	"github.com/illiux/stagger/internal/core/ecs"
	"github.com/illiux/stagger/internal/core/event"
	coresys "github.com/illiux/stagger/internal/core/system"
	"github.com/illiux/stagger/internal/data"
	"github.com/illiux/stagger/internal/schedule"
	"github.com/illiux/stagger/internal/scripting"
	"github.com/illiux/stagger/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/sim.toml"
	if p := os.Getenv("STAGGERSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load content
	spawns, err := data.LoadSpawnList(cfg.Sim.SpawnFile)
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}

	lua, err := scripting.NewEngine(cfg.Sim.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer lua.Close()

	// 4. Build the world
	world := ecs.NewWorld()
	regenStore := ecs.NewStore[component.Regen]()
	decayStore := ecs.NewStore[component.Decay]()
	pausedStore := ecs.NewStore[component.Paused]()
	world.Registry().Register(regenStore)
	world.Registry().Register(decayStore)
	world.Registry().Register(pausedStore)

	bus := event.NewBus()
	clk := clock.New(cfg.Sim.TickRate)
	rng := rand.New(rand.NewSource(cfg.Sim.Seed))

	// 5. Spawn the initial population, then build schedulers on top of it.
	// Construction replays the stores; trickle entries arrive later over the
	// bus.
	spawner := system.NewSpawner(world, regenStore, decayStore, lua)
	for _, e := range spawns.Entries {
		if !e.Trickle {
			spawner.SpawnEntry(e)
		}
	}

	pauseSet := component.NewPauseSet(pausedStore)
	regenSched := schedule.New(regenStore, clk, rng, pauseSet,
		schedule.WithTrackedHook(func(id ecs.EntityID, c *component.Regen) {
			log.Debug("tracking regenerator",
				zap.Uint64("entity", uint64(id)),
				zap.Duration("interval", c.Interval))
		}))
	regenSched.Subscribe(bus)

	decaySched := schedule.New[component.Decay](decayStore, clk, rng, nil)
	decaySched.Subscribe(bus)

	log.Info("world built",
		zap.Int("regen", regenStore.Len()),
		zap.Int("decay", decayStore.Len()),
		zap.Int("spawn_total", spawns.Count()))

	// 6. Register tick systems
	stats := &system.TickStats{}
	runner := coresys.NewRunner()
	runner.Register(system.NewClockSystem(clk))
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewTrickleSpawnSystem(spawner, bus, spawns))
	runner.Register(system.NewPauseChurnSystem(clk, regenStore, pausedStore, rng))
	runner.Register(system.NewStaggerUpdateSystem(regenSched, stats,
		func(_ ecs.EntityID, c *component.Regen) {
			c.Apply()
		}))
	runner.Register(system.NewStaggerUpdateSystem(decaySched, stats,
		func(id ecs.EntityID, c *component.Decay) {
			if c.Step() {
				world.MarkForDestruction(id)
			}
		}))
	runner.Register(system.NewReportSystem(log, clk, stats, regenStore, pausedStore,
		cfg.Sim.ReportEvery, func() int {
			return regenSched.Outstanding() + decaySched.Outstanding()
		}))
	runner.Register(system.NewCleanupSystem(world))

	// 7. Tick loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	var maxTicks uint64
	if cfg.Sim.Duration > 0 {
		maxTicks = uint64(cfg.Sim.Duration / cfg.Sim.TickRate)
	}

	log.Info("simulation started",
		zap.Duration("tick_rate", cfg.Sim.TickRate),
		zap.Uint64("max_ticks", maxTicks))

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Sim.TickRate)
			if maxTicks > 0 && clk.Ticks() >= maxTicks {
				logShutdown(log, clk, world, regenSched.Outstanding(), decaySched.Outstanding())
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			logShutdown(log, clk, world, regenSched.Outstanding(), decaySched.Outstanding())
			return nil
		}
	}
}

func logShutdown(log *zap.Logger, clk *clock.Clock, world *ecs.World, regen, decay int) {
	log.Info("simulation stopped",
		zap.Uint64("ticks", clk.Ticks()),
		zap.Int("tracked_regen", regen),
		zap.Int("tracked_decay", decay),
		zap.Int("live_entities", world.Pool().Live()))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
