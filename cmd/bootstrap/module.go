package bootstrap

import (
	"order-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
