package accountservice

import (
	"log/slog"

	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	httpadapter "inkwell/contexts/identity/account-service/adapters/http"
	"inkwell/contexts/identity/account-service/adapters/memory"
	postgresadapter "inkwell/contexts/identity/account-service/adapters/postgres"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	"inkwell/contexts/identity/account-service/application"
	"inkwell/contexts/identity/account-service/ports"
	"inkwell/internal/platform/token"
)

// Module is the composition surface for the account context. Runtime
// wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Hasher     ports.PasswordHasher
	Tokens     ports.TokenIssuer
	Clock      ports.Clock
	IDs        ports.IDGenerator
	DemoEmail  string
	Logger     *slog.Logger
}

// NewModule wires the account lifecycle policy against explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Hasher:    deps.Hasher,
		Tokens:    deps.Tokens,
		Clock:     deps.Clock,
		IDs:       deps.IDs,
		DemoEmail: deps.DemoEmail,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

// NewInMemoryModule backs the module with the memory store, for tests and
// local runs without postgres.
func NewInMemoryModule(codec token.Codec, demoEmail string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Hasher:     bcryptadapter.Hasher{},
		Tokens:     tokenadapter.Issuer{Codec: codec},
		Clock:      postgresadapter.SystemClock{},
		IDs:        postgresadapter.UUIDGenerator{},
		DemoEmail:  demoEmail,
		Logger:     logger,
	})
	module.Store = store
	return module
}
