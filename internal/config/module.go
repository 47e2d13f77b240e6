package config

import "go.uber.org/fx"

// Module loads and validates the configuration once per process.
var Module = fx.Module("config", fx.Provide(Load))
