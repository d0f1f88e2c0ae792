// Package handlers manages the different versions of the API.
package handlers

import (
	"net/http"
	"os"

	"github.com/rs/cors"
	"go.uber.org/zap"

	v1 "github.com/hashforge/miner/app/services/ledger/handlers/v1"
	"github.com/hashforge/miner/business/core/ledger"
	"github.com/hashforge/miner/business/web/v1/mid"
	"github.com/hashforge/miner/foundation/web"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	Ledger   *ledger.Ledger
}

// APIMux constructs a http.Handler with all application routes defined.
// The mux is wrapped for CORS so browser dashboards can query balances
// directly.
func APIMux(cfg MuxConfig) http.Handler {

	// Construct the web.App which holds all routes as well as common
	// Middleware.
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Panics(),
	)

	// Load the v1 routes.
	v1.Routes(app, v1.Config{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
	})

	return cors.AllowAll().Handler(app)
}
