package ports

import (
	"context"

	"arena/contexts/elections/ballot-box/domain/entities"
)

type BallotBoxRepository interface {
	SaveBallotBox(ctx context.Context, box *entities.BallotBox) error
	GetBallotBox(ctx context.Context, boxID string) (*entities.BallotBox, error)
	ListBallotBoxIDs(ctx context.Context) ([]string, error)
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
