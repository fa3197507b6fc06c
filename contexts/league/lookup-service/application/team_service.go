package application

import (
	"context"
	"fmt"
	"log/slog"

	"arena/contexts/league/lookup-service/domain/entities"
	domainerrors "arena/contexts/league/lookup-service/domain/errors"
	"arena/contexts/league/lookup-service/ports"
)

type TeamService struct {
	Teams   ports.TeamRepository
	Leagues ports.LeagueRepository
	Logger  *slog.Logger
}

// Search keeps the league's teams founded strictly after (NewerThan) or
// strictly before (OlderThan) the search date, in store order.
func (s TeamService) Search(ctx context.Context, search entities.TeamSearch) ([]entities.Team, error) {
	if err := Validator().Struct(search); err != nil {
		return nil, fmt.Errorf("%w: direction %q", domainerrors.ErrInvalidSearch, search.Direction)
	}

	teams, ok, err := teamsForLeague(ctx, s.Leagues, s.Teams, search.LeagueID)
	if err != nil {
		ResolveLogger(s.Logger).Error("team search failed",
			"event", "team_search_failed",
			"module", "league/lookup-service",
			"layer", "application",
			"league_id", search.LeagueID,
			"direction", string(search.Direction),
			"error", err.Error(),
		)
		return nil, err
	}
	if !ok {
		return []entities.Team{}, nil
	}

	matched := make([]entities.Team, 0, len(teams))
	for _, team := range teams {
		if search.Matches(team) {
			matched = append(matched, team)
		}
	}
	return matched, nil
}
