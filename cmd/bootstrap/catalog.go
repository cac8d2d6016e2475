package bootstrap

import (
	"order-service/internal/infra/catalog"
	"order-service/internal/pkg/config"
	"order-service/internal/usecase/commands"

	"go.uber.org/fx"
)

// The catalog base URL is explicit configuration into the client
// constructor, never ambient global state.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(commands.ProductCatalog)),
		),
	),
)

func NewCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}
