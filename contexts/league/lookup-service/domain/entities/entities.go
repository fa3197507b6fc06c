package entities

import "time"

type League struct {
	ID   int64
	Name string
}

type Team struct {
	ID           int64
	Name         string
	LeagueID     int64
	FoundingDate time.Time
}

type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	TeamID      int64
}

func (p Player) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type SearchDateDirection string

const (
	NewerThan SearchDateDirection = "newer_than"
	OlderThan SearchDateDirection = "older_than"
)

func ParseSearchDateDirection(raw string) (SearchDateDirection, bool) {
	switch SearchDateDirection(raw) {
	case NewerThan:
		return NewerThan, true
	case OlderThan:
		return OlderThan, true
	default:
		return "", false
	}
}

// TeamSearch filters a league's teams by founding date. Equal dates never
// match in either direction.
type TeamSearch struct {
	LeagueID     int64
	FoundingDate time.Time
	Direction    SearchDateDirection `validate:"search_direction"`
}

func (s TeamSearch) Matches(team Team) bool {
	switch s.Direction {
	case NewerThan:
		return team.FoundingDate.After(s.FoundingDate)
	case OlderThan:
		return team.FoundingDate.Before(s.FoundingDate)
	default:
		return false
	}
}
