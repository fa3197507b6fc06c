package memory

import (
	"context"
	"sync"

	"arena/contexts/league/lookup-service/domain/entities"
	"arena/contexts/league/lookup-service/ports"
)

type Seed struct {
	Leagues []entities.League
	Teams   []entities.Team
	Players []entities.Player
}

// Store answers lookups in seed order.
type Store struct {
	mu sync.RWMutex

	leagues []entities.League
	teams   []entities.Team
	players []entities.Player
}

func NewStore(seed Seed) *Store {
	return &Store{
		leagues: append([]entities.League(nil), seed.Leagues...),
		teams:   append([]entities.Team(nil), seed.Teams...),
		players: append([]entities.Player(nil), seed.Players...),
	}
}

func (s *Store) AddLeague(league entities.League) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues = append(s.leagues, league)
}

func (s *Store) AddTeam(team entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append(s.teams, team)
}

func (s *Store) AddPlayer(player entities.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append(s.players, player)
}

func (s *Store) IsValid(_ context.Context, leagueID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, league := range s.leagues {
		if league.ID == leagueID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetForLeague(_ context.Context, leagueID int64) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Team, 0)
	for _, team := range s.teams {
		if team.LeagueID == leagueID {
			items = append(items, team)
		}
	}
	return items, nil
}

func (s *Store) GetByID(_ context.Context, playerID int64) (entities.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, player := range s.players {
		if player.ID == playerID {
			return player, true, nil
		}
	}
	return entities.Player{}, false, nil
}

func (s *Store) GetForTeam(_ context.Context, teamID int64) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Player, 0)
	for _, player := range s.players {
		if player.TeamID == teamID {
			items = append(items, player)
		}
	}
	return items, nil
}

var _ ports.LeagueRepository = (*Store)(nil)
var _ ports.TeamRepository = (*Store)(nil)
var _ ports.PlayerRepository = (*Store)(nil)
