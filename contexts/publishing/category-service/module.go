package categoryservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/category-service/adapters/http"
	"inkwell/contexts/publishing/category-service/adapters/memory"
	postgresadapter "inkwell/contexts/publishing/category-service/adapters/postgres"
	"inkwell/contexts/publishing/category-service/application"
	"inkwell/contexts/publishing/category-service/ports"
)

// Module is the composition surface for the category context.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	IDs        ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		IDs:    deps.IDs,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		IDs:        postgresadapter.UUIDGenerator{},
		Logger:     logger,
	})
	module.Store = store
	return module
}
