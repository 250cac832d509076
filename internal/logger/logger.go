// Package logger owns the process-wide zap logger shared by the API and
// migration binaries.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the shared logger once. Production environments get the JSON
// encoder; anything else gets the console encoder used during development.
// Every entry carries a service field so fintrack logs stay identifiable
// when aggregated.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		switch env {
		case "production", "prod":
			base, err = zap.NewProduction()
		default:
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			base = zap.NewNop()
		}

		sugar = base.With(zap.String("service", "fintrack")).Sugar()
	})
}

// Get returns the shared sugared logger, initializing a development logger
// when Init was never called. Tests rely on that fallback.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries. Deferred from main.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
