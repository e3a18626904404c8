// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/saksham0008/CryptoCurrency-Simulation/app/services/node/handlers/v1/public"
	"github.com/saksham0008/CryptoCurrency-Simulation/business/sys/metrics"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/events"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/nameservice"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log     *zap.SugaredLogger
	State   *state.State
	NS      *nameservice.NameService
	Evts    *events.Events
	Metrics *metrics.Metrics
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:     cfg.Log,
		State:   cfg.State,
		NS:      cfg.NS,
		WS:      websocket.Upgrader{},
		Evts:    cfg.Evts,
		Metrics: cfg.Metrics,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/balances/list", pbl.Balances)
	app.Handle(http.MethodGet, version, "/balances/list/:account", pbl.Balances)
	app.Handle(http.MethodGet, version, "/blocks/list", pbl.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/list/:account", pbl.Blocks)
	app.Handle(http.MethodGet, version, "/tx/history", pbl.History)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Mempool)
	app.Handle(http.MethodPost, version, "/tx/send", pbl.SendTransaction)
	app.Handle(http.MethodPost, version, "/mining/mine", pbl.Mine)
	app.Handle(http.MethodPost, version, "/accounts/create", pbl.CreateAccount)
}
