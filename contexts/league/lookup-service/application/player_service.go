package application

import (
	"context"
	"fmt"
	"log/slog"

	"arena/contexts/league/lookup-service/domain/entities"
	domainerrors "arena/contexts/league/lookup-service/domain/errors"
	"arena/contexts/league/lookup-service/ports"
)

type PlayerService struct {
	Players ports.PlayerRepository
	Teams   ports.TeamRepository
	Leagues ports.LeagueRepository
	Logger  *slog.Logger
}

// GetByID passes the player store's answer through untouched.
func (s PlayerService) GetByID(ctx context.Context, playerID int64) (entities.Player, bool, error) {
	return s.Players.GetByID(ctx, playerID)
}

// GetForLeague returns every player of every team in the league, team by team
// in store order. Unknown leagues yield an empty slice without touching the
// team or player stores.
func (s PlayerService) GetForLeague(ctx context.Context, leagueID int64) ([]entities.Player, error) {
	teams, ok, err := teamsForLeague(ctx, s.Leagues, s.Teams, leagueID)
	if err != nil {
		s.logFailure("players_for_league_failed", err, leagueID)
		return nil, err
	}
	if !ok {
		return []entities.Player{}, nil
	}

	players := make([]entities.Player, 0)
	for _, team := range teams {
		items, err := s.Players.GetForTeam(ctx, team.ID)
		if err != nil {
			err = fmt.Errorf("get players for team %d: %w", team.ID, err)
			s.logFailure("players_for_league_failed", err, leagueID)
			return nil, err
		}
		players = append(players, items...)
	}
	return players, nil
}

func (s PlayerService) logFailure(event string, err error, leagueID int64) {
	ResolveLogger(s.Logger).Error("player lookup failed",
		"event", event,
		"module", "league/lookup-service",
		"layer", "application",
		"league_id", leagueID,
		"error", err.Error(),
	)
}

// teamsForLeague reports ok=false for an invalid league. A valid league whose
// store hands back no collection is ErrInvalidCollection.
func teamsForLeague(
	ctx context.Context,
	leagues ports.LeagueRepository,
	teams ports.TeamRepository,
	leagueID int64,
) ([]entities.Team, bool, error) {
	valid, err := leagues.IsValid(ctx, leagueID)
	if err != nil {
		return nil, false, fmt.Errorf("validate league %d: %w", leagueID, err)
	}
	if !valid {
		return nil, false, nil
	}
	items, err := teams.GetForLeague(ctx, leagueID)
	if err != nil {
		return nil, false, fmt.Errorf("get teams for league %d: %w", leagueID, err)
	}
	if items == nil {
		return nil, false, fmt.Errorf("get teams for league %d: %w", leagueID, domainerrors.ErrInvalidCollection)
	}
	return items, true, nil
}
