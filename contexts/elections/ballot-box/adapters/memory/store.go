package memory

import (
	"context"
	"strings"
	"sync"

	"arena/contexts/elections/ballot-box/domain/entities"
	domainerrors "arena/contexts/elections/ballot-box/domain/errors"
	"arena/contexts/elections/ballot-box/ports"

	"github.com/google/uuid"
)

// Store keeps snapshots, never live aggregates, so callers cannot mutate
// stored state without saving.
type Store struct {
	mu    sync.RWMutex
	boxes map[string]entities.Snapshot
	order []string
}

func NewStore() *Store {
	return &Store{
		boxes: make(map[string]entities.Snapshot),
	}
}

func (s *Store) SaveBallotBox(_ context.Context, box *entities.BallotBox) error {
	if box == nil || strings.TrimSpace(box.ID()) == "" {
		return domainerrors.ErrInvalidBallotBoxID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	boxID := strings.TrimSpace(box.ID())
	if _, ok := s.boxes[boxID]; !ok {
		s.order = append(s.order, boxID)
	}
	s.boxes[boxID] = box.Snapshot()
	return nil
}

func (s *Store) GetBallotBox(_ context.Context, boxID string) (*entities.BallotBox, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.boxes[strings.TrimSpace(boxID)]
	if !ok {
		return nil, domainerrors.ErrBallotBoxNotFound
	}
	return entities.RestoreBallotBox(snapshot), nil
}

func (s *Store) ListBallotBoxIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]string, len(s.order))
	copy(items, s.order)
	return items, nil
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.BallotBoxRepository = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
