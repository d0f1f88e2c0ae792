// Package worker implements the continuous mining orchestration for the
// engine: one goroutine that mines block after block until the session
// ends.
package worker

import (
	"context"
	"sync"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/miner"
)

// Relay represents the behavior required to report a mined block to an
// external collaborator.
type Relay interface {
	SendBlock(ctx context.Context, record miner.Record) error
}

// Config represents the dependencies the worker needs to run a mining
// session.
type Config struct {
	Miner      *miner.Miner
	MinerID    string
	EvHandler  miner.EventHandler
	OnBlock    func(record miner.Record)
	OnProgress block.ProgressFunc
	Relay      Relay
}

// Worker manages the continuous mining workflow.
type Worker struct {
	miner      *miner.Miner
	minerID    string
	evHandler  miner.EventHandler
	onBlock    func(record miner.Record)
	onProgress block.ProgressFunc
	relay      Relay

	wg           sync.WaitGroup
	shut         chan struct{}
	startMining  chan bool
	cancelMining chan bool
}

// Run creates a worker and starts the goroutine that waits for mining
// sessions to be signaled.
func Run(cfg Config) *Worker {
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	w := Worker{
		miner:        cfg.Miner,
		minerID:      cfg.MinerID,
		evHandler:    ev,
		onBlock:      cfg.OnBlock,
		onProgress:   cfg.OnProgress,
		relay:        cfg.Relay,
		shut:         make(chan struct{}),
		startMining:  make(chan bool, 1),
		cancelMining: make(chan bool, 1),
	}

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningOperations()
	}()

	<-hasStarted

	return &w
}

// Shutdown terminates the goroutine performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.SignalCancelMining()

	close(w.shut)
	w.wg.Wait()
}

// SignalStartMining starts a mining session. If there is already a signal
// pending in the channel, just return since a session will start.
func (w *Worker) SignalStartMining() {
	select {
	case w.startMining <- true:
	default:
	}
	w.evHandler("worker: SignalStartMining: mining signaled")
}

// SignalCancelMining signals the in-flight mining session to stop. The
// session ends as soon as the current search observes the cancel.
func (w *Worker) SignalCancelMining() {
	select {
	case w.cancelMining <- true:
	default:
	}
	w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")
}

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
