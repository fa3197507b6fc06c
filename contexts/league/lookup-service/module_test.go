package lookupservice_test

import (
	"context"
	"testing"
	"time"

	lookupservice "arena/contexts/league/lookup-service"
	"arena/contexts/league/lookup-service/adapters/memory"
	"arena/contexts/league/lookup-service/domain/entities"
)

func TestInMemoryModuleDemoLookups(t *testing.T) {
	module := lookupservice.NewInMemoryModule(memory.DemoSeed(), nil)
	ctx := context.Background()

	players, err := module.Players.GetForLeague(ctx, 1)
	if err != nil {
		t.Fatalf("players for league failed: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 players in league 1, got %d", len(players))
	}
	for i, id := range []int64{100, 101, 102, 103} {
		if players[i].ID != id {
			t.Fatalf("expected player %d at %d, got %d", id, i, players[i].ID)
		}
	}

	player, found, err := module.Players.GetByID(ctx, 102)
	if err != nil || !found || player.FullName() != "Paulo Lima" {
		t.Fatalf("unexpected player %+v found=%v err=%v", player, found, err)
	}

	teams, err := module.Teams.Search(ctx, entities.TeamSearch{
		LeagueID:     1,
		FoundingDate: time.Date(1991, time.July, 19, 0, 0, 0, 0, time.UTC),
		Direction:    entities.OlderThan,
	})
	if err != nil {
		t.Fatalf("team search failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != 10 {
		t.Fatalf("expected only team 10, got %+v", teams)
	}
}

func TestInMemoryModuleSeesLaterAdditions(t *testing.T) {
	module := lookupservice.NewInMemoryModule(memory.Seed{}, nil)
	ctx := context.Background()

	players, err := module.Players.GetForLeague(ctx, 7)
	if err != nil || len(players) != 0 {
		t.Fatalf("expected empty result for unknown league, got %+v err=%v", players, err)
	}

	module.Store.AddLeague(entities.League{ID: 7, Name: "Liga Mineira"})
	module.Store.AddTeam(entities.Team{ID: 70, Name: "Raposas", LeagueID: 7, FoundingDate: time.Date(2001, time.May, 4, 0, 0, 0, 0, time.UTC)})
	module.Store.AddPlayer(entities.Player{ID: 700, FirstName: "Davi", LastName: "Rocha", TeamID: 70})

	players, err = module.Players.GetForLeague(ctx, 7)
	if err != nil {
		t.Fatalf("players for league failed: %v", err)
	}
	if len(players) != 1 || players[0].ID != 700 {
		t.Fatalf("unexpected players %+v", players)
	}
}
