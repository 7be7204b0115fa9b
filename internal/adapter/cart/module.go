package cart

import "go.uber.org/fx"

// Module exposes the cart provider to fx graph.
var Module = fx.Provide(func() Provider { return NewDefault() })
