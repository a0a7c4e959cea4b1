package bootstrap

import (
	"eventease-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RatesModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
