package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/adapter/cart"
	"github.com/polkiloo/checkout/internal/adapter/gateway"
	"github.com/polkiloo/checkout/internal/app"
	"github.com/polkiloo/checkout/internal/config"
	"github.com/polkiloo/checkout/internal/logger"
	"github.com/polkiloo/checkout/internal/pkg/auth"
	"github.com/polkiloo/checkout/internal/server/http/router"
	"github.com/polkiloo/checkout/internal/storage/memory"
	"github.com/polkiloo/checkout/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		cart.Module,
		gateway.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
