package mid

import (
	"context"
	"expvar"
	"net/http"
	"runtime"

	"github.com/hashforge/miner/foundation/web"
)

// Web request counters published on the debug mux next to the standard
// library expvars.
var (
	goroutines = expvar.NewInt("goroutines")
	requests   = expvar.NewInt("requests")
	errors     = expvar.NewInt("errors")
	panics     = expvar.NewInt("panics")
)

// Metrics updates program counters per request.
func Metrics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)

			requests.Add(1)
			if requests.Value()%100 == 0 {
				goroutines.Set(int64(runtime.NumGoroutine()))
			}
			if err != nil {
				errors.Add(1)
			}

			return err
		}

		return h
	}

	return m
}

// addPanics increments the panics counter. Called from the Panics
// middleware on recovery.
func addPanics(_ context.Context) {
	panics.Add(1)
}
