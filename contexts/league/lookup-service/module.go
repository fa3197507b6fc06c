package lookupservice

import (
	"log/slog"

	"arena/contexts/league/lookup-service/adapters/memory"
	"arena/contexts/league/lookup-service/application"
	"arena/contexts/league/lookup-service/ports"
)

type Module struct {
	Players application.PlayerService
	Teams   application.TeamService
	Store   *memory.Store
}

type Dependencies struct {
	Leagues     ports.LeagueRepository
	TeamStore   ports.TeamRepository
	PlayerStore ports.PlayerRepository
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Players: application.PlayerService{
			Players: deps.PlayerStore,
			Teams:   deps.TeamStore,
			Leagues: deps.Leagues,
			Logger:  deps.Logger,
		},
		Teams: application.TeamService{
			Teams:   deps.TeamStore,
			Leagues: deps.Leagues,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Leagues:     store,
		TeamStore:   store,
		PlayerStore: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
