package memory

import (
	"context"
	"testing"
	"time"

	"arena/contexts/league/lookup-service/domain/entities"
)

func TestDemoSeedLookups(t *testing.T) {
	store := NewStore(DemoSeed())
	ctx := context.Background()

	valid, err := store.IsValid(ctx, 1)
	if err != nil || !valid {
		t.Fatalf("expected league 1 valid, got %v err=%v", valid, err)
	}
	valid, _ = store.IsValid(ctx, 99)
	if valid {
		t.Fatal("expected league 99 invalid")
	}

	teams, err := store.GetForLeague(ctx, 1)
	if err != nil {
		t.Fatalf("teams failed: %v", err)
	}
	if len(teams) != 3 || teams[0].ID != 10 || teams[2].ID != 12 {
		t.Fatalf("unexpected teams %+v", teams)
	}

	player, found, err := store.GetByID(ctx, 102)
	if err != nil || !found || player.FullName() != "Paulo Lima" {
		t.Fatalf("unexpected player %+v found=%v err=%v", player, found, err)
	}
}

func TestMissingLookupsReturnEmptyNonNil(t *testing.T) {
	store := NewStore(Seed{})
	ctx := context.Background()

	teams, err := store.GetForLeague(ctx, 1)
	if err != nil || teams == nil || len(teams) != 0 {
		t.Fatalf("expected empty non-nil teams, got %#v err=%v", teams, err)
	}
	players, err := store.GetForTeam(ctx, 1)
	if err != nil || players == nil || len(players) != 0 {
		t.Fatalf("expected empty non-nil players, got %#v err=%v", players, err)
	}
	_, found, err := store.GetByID(ctx, 1)
	if err != nil || found {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	store := NewStore(Seed{})
	store.AddLeague(entities.League{ID: 5})
	store.AddTeam(entities.Team{ID: 2, LeagueID: 5, FoundingDate: time.Now().UTC()})
	store.AddTeam(entities.Team{ID: 1, LeagueID: 5, FoundingDate: time.Now().UTC()})
	store.AddPlayer(entities.Player{ID: 9, TeamID: 2})

	teams, _ := store.GetForLeague(context.Background(), 5)
	if len(teams) != 2 || teams[0].ID != 2 || teams[1].ID != 1 {
		t.Fatalf("unexpected order %+v", teams)
	}
	players, _ := store.GetForTeam(context.Background(), 2)
	if len(players) != 1 || players[0].ID != 9 {
		t.Fatalf("unexpected players %+v", players)
	}
}
