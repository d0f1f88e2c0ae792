package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/miner"
)

// miningOperations handles mining sessions.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case <-w.startMining:
			if !w.isShutdown() {
				w.runMiningSession()
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// runMiningSession mines block after block, reporting each one found,
// until an attempt ends without a solution. The first exhausted attempt
// ends the whole session rather than retargeting and retrying; the caller
// decides whether to start another session.
func (w *Worker) runMiningSession() {
	w.evHandler("worker: runMiningSession: MINING: session started: miner[%s]", w.minerID)
	defer w.evHandler("worker: runMiningSession: MINING: session completed")

	// Drain the cancel mining channel before starting.
	select {
	case <-w.cancelMining:
		w.evHandler("worker: runMiningSession: MINING: drained cancel channel")
	default:
	}

	// Create a context so the in-flight search can be cancelled.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Can't return from this function until these G's are complete.
	var wg sync.WaitGroup
	wg.Add(2)

	// This G exists to cancel the mining session.
	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		select {
		case <-w.cancelMining:
			w.evHandler("worker: runMiningSession: MINING: CANCEL: requested")
		case <-w.shut:
			w.evHandler("worker: runMiningSession: MINING: CANCEL: shutdown")
		case <-ctx.Done():
		}
	}()

	// This G is performing the mining.
	go func() {
		defer func() {
			cancel()
			wg.Done()
		}()

		for blockNumber := uint64(1); ; blockNumber++ {
			result, err := w.miner.MineBlock(ctx, w.minerID, w.onProgress)
			if err != nil {
				switch {
				case errors.Is(err, block.ErrNonceExhausted):
					w.evHandler("worker: runMiningSession: MINING: exhausted: hashes[%d] elapsed[%v]", result.Hashes, result.Elapsed)
				case ctx.Err() != nil:
					w.evHandler("worker: runMiningSession: MINING: CANCEL: complete")
				default:
					w.evHandler("worker: runMiningSession: MINING: ERROR: %s", err)
				}
				return
			}

			record := miner.NewRecord(w.minerID, blockNumber, result)

			w.evHandler("worker: runMiningSession: MINING: block[%d] mined: hash[%s] duration[%v]", blockNumber, result.Hash, result.Elapsed)

			if w.onBlock != nil {
				w.onBlock(record)
			}

			// Report the block to the external collaborator. Log the
			// error, but that's it; a relay failure never stops mining.
			if w.relay != nil {
				if err := w.relay.SendBlock(ctx, record); err != nil {
					w.evHandler("worker: runMiningSession: MINING: relay: WARNING %s", err)
				}
			}
		}
	}()

	// Wait for both G's to terminate.
	wg.Wait()
}
