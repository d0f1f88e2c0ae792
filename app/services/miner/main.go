package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"

	"github.com/hashforge/miner/app/services/miner/handlers"
	"github.com/hashforge/miner/business/core/relay"
	"github.com/hashforge/miner/business/sys/metrics"
	"github.com/hashforge/miner/foundation/events"
	"github.com/hashforge/miner/foundation/logger"
	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/miner"
	"github.com/hashforge/miner/foundation/mining/worker"
)

// build is the git version of this program. It is set using build flags.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("MINER")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:120s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			DebugHost       string        `conf:"default:0.0.0.0:7080"`
			PublicHost      string        `conf:"default:0.0.0.0:8080"`
		}
		Mining struct {
			MinerID     string `conf:"default:miner1"`
			Difficulty  uint   `conf:"default:1"`
			NonceBound  uint64 `conf:"default:1000000000"`
			SampleEvery uint64 `conf:"default:100000"`
			BlockReward uint64 `conf:"default:50"`
			LedgerHost  string `conf:"default:0.0.0.0:9080"`
			AutoStart   bool   `conf:"default:false"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "MINER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Mining Engine Support

	// The events hub fans mining events out to any websocket client that
	// is connected into the system.
	evts := events.New()
	defer evts.Shutdown()

	// The mining packages accept a function of this signature to allow
	// the application to log. These raw messages are also sent to any
	// websocket client listening on the events endpoint.
	ev := func(v string, args ...any) {
		s := fmt.Sprintf(v, args...)
		log.Infow(s, "traceid", "00000000-0000-0000-0000-000000000000")
		if evt, err := events.NewEvent(events.KindLog, s); err == nil {
			evts.Send(evt)
		}
	}

	// The miner value owns the shared difficulty, the mempool, and the
	// statistics accumulated across attempts.
	m := miner.New(miner.Config{
		Difficulty:  cfg.Mining.Difficulty,
		NonceBound:  cfg.Mining.NonceBound,
		SampleEvery: cfg.Mining.SampleEvery,
		BlockReward: cfg.Mining.BlockReward,
		EvHandler:   ev,
	})
	metrics.SetDifficulty(m.Stats().Difficulty)

	// The relay reports each mined block to the ledger service for
	// crediting. Relay failures are logged by the worker and swallowed.
	rly := relay.New(cfg.Mining.LedgerHost)

	// The worker runs the continuous mining sessions.
	w := worker.Run(worker.Config{
		Miner:     m,
		MinerID:   cfg.Mining.MinerID,
		EvHandler: ev,
		OnBlock: func(record miner.Record) {
			metrics.ObserveBlockMined(record.MinerID, time.Duration(record.DurationMS)*time.Millisecond, record.HashRate)
			metrics.SetDifficulty(m.Stats().Difficulty)
			if evt, err := events.NewEvent(events.KindBlock, record); err == nil {
				evts.Send(evt)
			}
		},
		OnProgress: func(p block.Progress) {
			metrics.ObserveProgress(cfg.Mining.MinerID, cfg.Mining.SampleEvery, p.HashRate)
			if evt, err := events.NewEvent(events.KindProgress, p); err == nil {
				evts.Send(evt)
			}
		},
		Relay: rly,
	})
	defer w.Shutdown()

	if cfg.Mining.AutoStart {
		w.SignalStartMining()
	}

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug router started", "host", cfg.Web.DebugHost)

	// Start the service listening for debug requests.
	// Not concerned with shutting this down with load shedding.
	debugMux := handlers.DebugMux(build, log)
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Start Public Service

	log.Infow("startup", "status", "initializing V1 public API support")

	// Make a channel to listen for an interrupt or terminate signal from
	// the OS. Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Construct the mux for the public API calls.
	publicMux := handlers.PublicMux(handlers.MuxConfig{
		Shutdown: shutdown,
		Log:      log,
		Miner:    m,
		Worker:   w,
		Evts:     evts,
	})

	// Construct a server to service the requests against the mux.
	public := http.Server{
		Addr:         cfg.Web.PublicHost,
		Handler:      publicMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this
	// error.
	serverErrors := make(chan error, 1)

	// Start the service listening for api requests.
	go func() {
		log.Infow("startup", "status", "public api router started", "host", public.Addr)
		serverErrors <- public.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shutdown and shed load.
		if err := public.Shutdown(ctx); err != nil {
			public.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
