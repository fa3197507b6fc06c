package ports

import (
	"context"

	"arena/contexts/league/lookup-service/domain/entities"
)

type LeagueRepository interface {
	IsValid(ctx context.Context, leagueID int64) (bool, error)
}

// TeamRepository returns an empty, non-nil slice when a league has no teams.
// A nil slice with a nil error is a contract violation.
type TeamRepository interface {
	GetForLeague(ctx context.Context, leagueID int64) ([]entities.Team, error)
}

// PlayerRepository reports a missing player with found=false, not an error.
type PlayerRepository interface {
	GetByID(ctx context.Context, playerID int64) (entities.Player, bool, error)
	GetForTeam(ctx context.Context, teamID int64) ([]entities.Player, error)
}
