package memory

import (
	"time"

	"arena/contexts/league/lookup-service/domain/entities"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DemoSeed is a small two-league data set used when no database is configured.
func DemoSeed() Seed {
	return Seed{
		Leagues: []entities.League{
			{ID: 1, Name: "Liga Paulista"},
			{ID: 2, Name: "Liga Carioca"},
		},
		Teams: []entities.Team{
			{ID: 10, Name: "Tigres", LeagueID: 1, FoundingDate: date(1984, time.March, 2)},
			{ID: 11, Name: "Leões", LeagueID: 1, FoundingDate: date(1991, time.July, 19)},
			{ID: 12, Name: "Gaviões", LeagueID: 1, FoundingDate: date(1998, time.November, 5)},
			{ID: 20, Name: "Marés", LeagueID: 2, FoundingDate: date(1987, time.January, 30)},
		},
		Players: []entities.Player{
			{ID: 100, FirstName: "José", LastName: "da Silva", DateOfBirth: date(1990, time.May, 1), TeamID: 10},
			{ID: 101, FirstName: "Carlos", LastName: "Souza", DateOfBirth: date(1993, time.February, 12), TeamID: 10},
			{ID: 102, FirstName: "Paulo", LastName: "Lima", DateOfBirth: date(1988, time.August, 23), TeamID: 11},
			{ID: 103, FirstName: "Rafael", LastName: "Costa", DateOfBirth: date(1996, time.October, 9), TeamID: 12},
			{ID: 200, FirstName: "Bruno", LastName: "Alves", DateOfBirth: date(1992, time.December, 17), TeamID: 20},
		},
	}
}
