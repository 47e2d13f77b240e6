package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/banksajt/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenGenerator),
)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

func newTokenGenerator() TokenGenerator {
	return NewNumericGenerator()
}
