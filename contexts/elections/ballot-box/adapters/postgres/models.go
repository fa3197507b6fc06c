package postgresadapter

import (
	"strings"
	"time"

	"arena/contexts/elections/ballot-box/domain/entities"
)

type ballotBoxModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	ElectionActive bool      `gorm:"column:election_active"`
	WinnerName     string    `gorm:"column:winner_name"`
	WinnerVotes    int       `gorm:"column:winner_votes"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (ballotBoxModel) TableName() string {
	return "ballot_boxes"
}

// candidateModel rows are keyed by position, not by name, because names may
// repeat within one box.
type candidateModel struct {
	BallotBoxID string `gorm:"column:ballot_box_id;primaryKey"`
	Position    int    `gorm:"column:position;primaryKey"`
	Name        string `gorm:"column:name"`
	Votes       int    `gorm:"column:votes"`
}

func (candidateModel) TableName() string {
	return "ballot_candidates"
}

func ballotBoxModelFromSnapshot(snapshot entities.Snapshot, now time.Time) ballotBoxModel {
	return ballotBoxModel{
		ID:             strings.TrimSpace(snapshot.ID),
		ElectionActive: snapshot.ElectionActive,
		WinnerName:     snapshot.WinnerName,
		WinnerVotes:    snapshot.WinnerVotes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func candidateModelsFromSnapshot(snapshot entities.Snapshot) []candidateModel {
	rows := make([]candidateModel, 0, len(snapshot.Candidates))
	for position, candidate := range snapshot.Candidates {
		rows = append(rows, candidateModel{
			BallotBoxID: strings.TrimSpace(snapshot.ID),
			Position:    position,
			Name:        candidate.Name,
			Votes:       candidate.Votes,
		})
	}
	return rows
}

func (m ballotBoxModel) toSnapshot(candidates []candidateModel) entities.Snapshot {
	items := make([]entities.Candidate, 0, len(candidates))
	for _, row := range candidates {
		items = append(items, entities.Candidate{
			Name:  row.Name,
			Votes: row.Votes,
		})
	}
	return entities.Snapshot{
		ID:             m.ID,
		Candidates:     items,
		ElectionActive: m.ElectionActive,
		WinnerName:     m.WinnerName,
		WinnerVotes:    m.WinnerVotes,
	}
}
