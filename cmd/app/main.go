package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CafeRush_Go/internal/bootstrap"
	"github.com/osse101/CafeRush_Go/internal/config"
	"github.com/osse101/CafeRush_Go/internal/customer"
	"github.com/osse101/CafeRush_Go/internal/economy"
	"github.com/osse101/CafeRush_Go/internal/interact"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/minigame"
	"github.com/osse101/CafeRush_Go/internal/order"
	"github.com/osse101/CafeRush_Go/internal/scheduler"
	"github.com/osse101/CafeRush_Go/internal/serve"
	"github.com/osse101/CafeRush_Go/internal/server"
	"github.com/osse101/CafeRush_Go/internal/session"
	"github.com/osse101/CafeRush_Go/internal/stats"
	"github.com/osse101/CafeRush_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	// Core wiring: registry, order book, customers, economy, mini-games
	registry := menu.NewRegistry()
	generator := order.NewGenerator(registry)
	book := order.NewBook(publisher)

	customerCfg := customer.DefaultConfig()
	customerCfg.MaxCustomers = cfg.MaxCustomers
	customerCfg.QueueSlots = cfg.QueueSlots
	manager := customer.NewManager(customerCfg, generator, book, publisher)

	ledger := economy.NewLedger(registry, publisher, cfg.StartingMoney)
	runner := minigame.NewRunner(publisher)
	resolver := serve.NewResolver(registry, book, manager, ledger)

	entities := interact.NewRegistry()
	registerStations(entities)

	sess := session.New(session.Deps{
		Registry:      registry,
		Entities:      entities,
		Book:          book,
		Customers:     manager,
		Ledger:        ledger,
		Runner:        runner,
		Resolver:      resolver,
		Bus:           publisher,
		StartingMoney: cfg.StartingMoney,
	})

	recorder := stats.NewRecorder(stats.DefaultRecentSize, stats.DefaultRecentTTL)
	recorder.Attach(eventBus)

	// Background drivers: the frame tick and the spawn cadence
	pool := worker.NewPool(2, 64)
	pool.Start()

	sched := scheduler.New(pool)
	tickInterval := time.Duration(cfg.TickRateMS) * time.Millisecond
	sched.Schedule(tickInterval, worker.NewTickJob(sess, tickInterval))

	spawnMS := cfg.SpawnIntervalMS
	if spawnMS <= 0 {
		spawnMS = customer.SpawnIntervalMS(cfg.Mode)
	}
	sched.Schedule(time.Duration(spawnMS)*time.Millisecond, customer.NewSpawnJob(manager))

	srv := server.NewServer(cfg.Port, server.Deps{
		Session:  sess,
		Registry: registry,
		Recorder: recorder,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-sigCh:
		slog.Info("Signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
	})
}

// registerStations maps the fixed counter layout, sub-parts included, so
// every clickable ID resolves to its root station.
func registerStations(entities *interact.Registry) {
	entities.RegisterStation(interact.StationCups, "cups/stack")
	entities.RegisterStation(interact.StationPastry, "pastry_display/shelf", "pastry_display/glass")
	entities.RegisterStation(interact.StationEspresso, "espresso_machine/lever", "espresso_machine/portafilter")
	entities.RegisterStation(interact.StationMilk, "milk_steamer/wand", "milk_steamer/pitcher")
	entities.RegisterStation(interact.StationVanilla, "vanilla_syrup/pump")
	entities.RegisterStation(interact.StationCaramel, "caramel_syrup/pump")
	entities.RegisterStation(interact.StationChocolate, "chocolate_syrup/pump")
	entities.Register(interact.Entity{ID: "trash", Kind: interact.KindTrash}, "trash/bin", "trash/lid")
}
