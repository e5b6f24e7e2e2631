package postservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/post-service/adapters/http"
	"inkwell/contexts/publishing/post-service/adapters/memory"
	postgresadapter "inkwell/contexts/publishing/post-service/adapters/postgres"
	"inkwell/contexts/publishing/post-service/application"
	"inkwell/contexts/publishing/post-service/ports"
)

// Module is the composition surface for the post context.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Posts    ports.Repository
	Accounts ports.AccountDirectory
	Clock    ports.Clock
	IDs      ports.IDGenerator

	// FilterSingleReads applies the listing visibility filter to single
	// reads as well; see the platform config flag.
	FilterSingleReads bool
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Posts:             deps.Posts,
		Accounts:          deps.Accounts,
		Clock:             deps.Clock,
		IDs:               deps.IDs,
		FilterSingleReads: deps.FilterSingleReads,
		Logger:            deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

func NewInMemoryModule(filterSingleReads bool, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Posts:             store,
		Accounts:          store,
		Clock:             postgresadapter.SystemClock{},
		IDs:               postgresadapter.UUIDGenerator{},
		FilterSingleReads: filterSingleReads,
		Logger:            logger,
	})
	module.Store = store
	return module
}
