package gateway

import (
	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/config"
)

// Module exposes payment gateway implementation to fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
}

func newGateway(p gatewayParams) Gateway {
	return NewSimulated(p.Config.GatewayLatency)
}
