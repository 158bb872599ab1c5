package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/config"
	"github.com/ecoride/ecoride/internal/logger"
	"github.com/ecoride/ecoride/internal/migration"
	"github.com/ecoride/ecoride/internal/seed"
	"github.com/ecoride/ecoride/internal/server"
	"github.com/ecoride/ecoride/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Invocation order matters: migrate, sync the catalog and register
		// routes, then seed demo data through the services.
		migration.Module,
		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
