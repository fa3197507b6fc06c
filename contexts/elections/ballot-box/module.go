package ballotbox

import (
	"log/slog"

	"arena/contexts/elections/ballot-box/adapters/memory"
	"arena/contexts/elections/ballot-box/application"
	"arena/contexts/elections/ballot-box/ports"
)

type Module struct {
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Boxes  ports.BallotBoxRepository
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Boxes:  deps.Boxes,
			IDGen:  deps.IDGen,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Boxes:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
