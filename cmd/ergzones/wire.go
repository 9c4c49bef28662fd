//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"ergzones/internal/app"
	"ergzones/internal/metrics"
)

func initializeApp() (*application, error) {
	panic(wire.Build(
		provideSettings,
		provideLogger,
		metrics.New,
		provideRegistry,
		app.NewZoneService,
		provideLimiter,
		provideServer,
		newApplication,
	))
}
