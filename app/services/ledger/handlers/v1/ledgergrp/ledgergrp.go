// Package ledgergrp maintains the group of handlers for ledger access.
package ledgergrp

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashforge/miner/business/core/ledger"
	"github.com/hashforge/miner/business/sys/validate"
	v1 "github.com/hashforge/miner/business/web/v1"
	"github.com/hashforge/miner/foundation/mining/miner"
	"github.com/hashforge/miner/foundation/web"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
}

// AddBlock credits the balances for a mined block record.
func (h Handlers) AddBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var record blockRecord
	if err := web.Decode(r, &record); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if err := validate.Check(record); err != nil {
		return err
	}

	h.Log.Infow("add block", "traceid", v.TraceID, "miner", record.Miner, "block", record.BlockNumber, "hash", record.Hash)

	err = h.Ledger.Credit(miner.Record{
		MinerID:     record.Miner,
		BlockNumber: record.BlockNumber,
		Hash:        record.Hash,
		DurationMS:  record.DurationMS,
		HashRate:    record.HashRate,
		RewardTotal: record.RewardTotal,
		MinerShare:  record.MinerShare,
		PoolShare:   record.PoolShare,
		TimeStamp:   record.TimeStamp,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateBlock) {
			return v1.NewRequestError(err, http.StatusConflict)
		}
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	return web.Respond(ctx, w, statusResponse{Status: "block credited"}, http.StatusOK)
}

// QueryBalances returns the current balances for all accounts.
func (h Handlers) QueryBalances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Ledger.Balances(), http.StatusOK)
}

// QueryBalance returns the balance for the specified account.
func (h Handlers) QueryBalance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	resp := ledger.AccountBalance{
		Account: account,
		Balance: h.Ledger.Balance(account),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// QueryBlocks returns all the credited block records.
func (h Handlers) QueryBlocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Ledger.Records(), http.StatusOK)
}
