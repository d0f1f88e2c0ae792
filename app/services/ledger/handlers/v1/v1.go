// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hashforge/miner/app/services/ledger/handlers/v1/ledgergrp"
	"github.com/hashforge/miner/business/core/ledger"
	"github.com/hashforge/miner/foundation/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
}

const version = "v1"

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
	}

	app.Handle(http.MethodPost, version, "/block", lgh.AddBlock)
	app.Handle(http.MethodGet, version, "/balances", lgh.QueryBalances)
	app.Handle(http.MethodGet, version, "/balances/:account", lgh.QueryBalance)
	app.Handle(http.MethodGet, version, "/blocks", lgh.QueryBlocks)
}
