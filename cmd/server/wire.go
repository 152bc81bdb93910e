//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"fortune/internal/biz"
	"fortune/internal/conf"
	"fortune/internal/data"
	"fortune/internal/server"
	"fortune/internal/service"
	"fortune/internal/surface"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, *conf.Wheel, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, surface.ProviderSet, service.ProviderSet, newApp))
}
