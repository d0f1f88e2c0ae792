// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hashforge/miner/app/services/miner/handlers/v1/minegrp"
	"github.com/hashforge/miner/foundation/events"
	"github.com/hashforge/miner/foundation/mining/miner"
	"github.com/hashforge/miner/foundation/mining/worker"
	"github.com/hashforge/miner/foundation/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Miner  *miner.Miner
	Worker *worker.Worker
	Evts   *events.Events
}

const version = "v1"

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	mgh := minegrp.Handlers{
		Log:    cfg.Log,
		Miner:  cfg.Miner,
		Worker: cfg.Worker,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodPost, version, "/mine", mgh.Mine)
	app.Handle(http.MethodPost, version, "/tx/submit", mgh.SubmitTx)
	app.Handle(http.MethodPost, version, "/mining/start", mgh.StartMining)
	app.Handle(http.MethodPost, version, "/mining/stop", mgh.StopMining)
	app.Handle(http.MethodGet, version, "/stats", mgh.Stats)
	app.Handle(http.MethodGet, version, "/events", mgh.Events)
}
