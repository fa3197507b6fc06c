package postgresadapter

import (
	"time"

	"arena/contexts/league/lookup-service/domain/entities"
)

type leagueModel struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name"`
}

func (leagueModel) TableName() string {
	return "leagues"
}

type teamModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name         string    `gorm:"column:name"`
	LeagueID     int64     `gorm:"column:league_id;index"`
	FoundingDate time.Time `gorm:"column:founding_date"`
}

func (teamModel) TableName() string {
	return "teams"
}

func (m teamModel) toEntity() entities.Team {
	return entities.Team{
		ID:           m.ID,
		Name:         m.Name,
		LeagueID:     m.LeagueID,
		FoundingDate: m.FoundingDate.UTC(),
	}
}

func teamModelFromEntity(team entities.Team) teamModel {
	return teamModel{
		ID:           team.ID,
		Name:         team.Name,
		LeagueID:     team.LeagueID,
		FoundingDate: team.FoundingDate.UTC(),
	}
}

type playerModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth"`
	TeamID      int64     `gorm:"column:team_id;index"`
}

func (playerModel) TableName() string {
	return "players"
}

func (m playerModel) toEntity() entities.Player {
	return entities.Player{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth.UTC(),
		TeamID:      m.TeamID,
	}
}

func playerModelFromEntity(player entities.Player) playerModel {
	return playerModel{
		ID:          player.ID,
		FirstName:   player.FirstName,
		LastName:    player.LastName,
		DateOfBirth: player.DateOfBirth.UTC(),
		TeamID:      player.TeamID,
	}
}

func toTeamEntities(rows []teamModel) []entities.Team {
	items := make([]entities.Team, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func toPlayerEntities(rows []playerModel) []entities.Player {
	items := make([]entities.Player, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
