// Package minegrp maintains the group of handlers for the mining engine.
package minegrp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hashforge/miner/business/sys/validate"
	v1 "github.com/hashforge/miner/business/web/v1"
	"github.com/hashforge/miner/foundation/events"
	"github.com/hashforge/miner/foundation/mining/block"
	"github.com/hashforge/miner/foundation/mining/miner"
	"github.com/hashforge/miner/foundation/mining/worker"
	"github.com/hashforge/miner/foundation/web"
)

// Handlers manages the set of mining endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Miner  *miner.Miner
	Worker *worker.Worker
	Evts   *events.Events
	WS     websocket.Upgrader
}

// Mine mines a single block for the requested miner identity. The search
// runs synchronously; progress is published to the events hub while the
// client waits for the terminal result.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req mineRequest
	if err := web.Decode(r, &req); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if err := validate.Check(req); err != nil {
		return err
	}

	h.Log.Infow("mine one block", "traceid", v.TraceID, "miner", req.Miner)

	onProgress := func(p block.Progress) {
		if evt, err := events.NewEvent(events.KindProgress, p); err == nil {
			h.Evts.Send(evt)
		}
	}

	result, err := h.Miner.MineBlock(ctx, req.Miner, onProgress)
	switch {
	case err == nil:
	case errors.Is(err, block.ErrNonceExhausted):
		// A non-success result, not a fault. The result carries the
		// attempt statistics.
	case ctx.Err() != nil:
		return v1.NewRequestError(ctx.Err(), http.StatusRequestTimeout)
	default:
		return err
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}

// SubmitTx adds a transaction to the pool waiting to be mined.
func (h Handlers) SubmitTx(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req txRequest
	if err := web.Decode(r, &req); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if err := validate.Check(req); err != nil {
		return err
	}

	h.Log.Infow("submit tx", "traceid", v.TraceID, "tx", req.ID, "from", req.From, "to", req.To, "value", req.Value)

	h.Miner.SubmitTx(block.Tx{
		ID:    req.ID,
		From:  req.From,
		To:    req.To,
		Value: req.Value,
		Data:  req.Data,
	})

	return web.Respond(ctx, w, statusResponse{Status: "tx added to mempool"}, http.StatusOK)
}

// StartMining signals the worker to begin a continuous mining session.
func (h Handlers) StartMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Worker.SignalStartMining()
	return web.Respond(ctx, w, statusResponse{Status: "mining started"}, http.StatusOK)
}

// StopMining signals the in-flight mining session to stop.
func (h Handlers) StopMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Worker.SignalCancelMining()
	return web.Respond(ctx, w, statusResponse{Status: "mining stopped"}, http.StatusOK)
}

// Stats returns the accumulated mining statistics.
func (h Handlers) Stats(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Miner.Stats(), http.StatusOK)
}

// Events handles a web socket to provide mining events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case evt, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteJSON(evt); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
