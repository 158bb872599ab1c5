// Package db provides the process-local gorm store. The default DSN is an
// in-memory sqlite database: state lives for the lifetime of the process and
// nothing is written to disk.
package db

import (
	"github.com/ecoride/ecoride/internal/config"
	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func New(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	log.Info("store opened", zap.String("dsn", cfg.DBPath))
	return gdb, nil
}

// Module wires the gorm store for the application.
var Module = fx.Module("db",
	fx.Provide(New),
)
