package application

import (
	"context"
	"fmt"
	"time"

	"arena/contexts/league/lookup-service/domain/entities"

	"github.com/stretchr/testify/mock"
)

type mockLeagueRepository struct {
	mock.Mock
}

func (m *mockLeagueRepository) IsValid(ctx context.Context, leagueID int64) (bool, error) {
	args := m.Called(ctx, leagueID)
	return args.Bool(0), args.Error(1)
}

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) GetForLeague(ctx context.Context, leagueID int64) ([]entities.Team, error) {
	args := m.Called(ctx, leagueID)
	teams, _ := args.Get(0).([]entities.Team)
	return teams, args.Error(1)
}

type mockPlayerRepository struct {
	mock.Mock
}

func (m *mockPlayerRepository) GetByID(ctx context.Context, playerID int64) (entities.Player, bool, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(entities.Player), args.Bool(1), args.Error(2)
}

func (m *mockPlayerRepository) GetForTeam(ctx context.Context, teamID int64) ([]entities.Player, error) {
	args := m.Called(ctx, teamID)
	players, _ := args.Get(0).([]entities.Player)
	return players, args.Error(1)
}

func createTeams(count int, leagueID int64) []entities.Team {
	teams := make([]entities.Team, 0, count)
	for i := 0; i < count; i++ {
		teams = append(teams, entities.Team{
			ID:           int64(i + 1),
			Name:         fmt.Sprintf("Team %d", i+1),
			LeagueID:     leagueID,
			FoundingDate: time.Date(1980+i*5, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return teams
}

func createPlayers(count int, teamID int64) []entities.Player {
	players := make([]entities.Player, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, entities.Player{
			ID:          teamID*100 + int64(i),
			FirstName:   fmt.Sprintf("Player%d", i),
			LastName:    fmt.Sprintf("Team%d", teamID),
			DateOfBirth: time.Date(1990+i, time.January, 1, 0, 0, 0, 0, time.UTC),
			TeamID:      teamID,
		})
	}
	return players
}
