package commentservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/engagement/comment-service/adapters/http"
	"inkwell/contexts/engagement/comment-service/adapters/memory"
	postgresadapter "inkwell/contexts/engagement/comment-service/adapters/postgres"
	"inkwell/contexts/engagement/comment-service/application"
	"inkwell/contexts/engagement/comment-service/ports"
)

// Module is the composition surface for the comment context.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDs        ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
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
		Clock:      postgresadapter.SystemClock{},
		IDs:        postgresadapter.UUIDGenerator{},
		Logger:     logger,
	})
	module.Store = store
	return module
}
