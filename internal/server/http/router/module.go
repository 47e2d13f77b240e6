package router

import "go.uber.org/fx"

// Module builds the gin engine served by the HTTP server.
var Module = fx.Module("http.router", fx.Provide(Setup))
