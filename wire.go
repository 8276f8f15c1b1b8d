//go:build wireinject
// +build wireinject

package main

import (
	"TrailGuide/cmd"

	"github.com/google/wire"
)

func InitializeServer(configPath string) (*cmd.Server, func(), error) {
	wire.Build(
		ProvideConfiguration,
		ProvideDatabase,
		repositorySet,
		serviceSet,
		handlerSet,
	)
	return nil, nil, nil
}
