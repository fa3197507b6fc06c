package application

import (
	"context"
	"log/slog"
	"strings"

	"arena/contexts/elections/ballot-box/domain/entities"
	domainerrors "arena/contexts/elections/ballot-box/domain/errors"
	"arena/contexts/elections/ballot-box/ports"
)

type Service struct {
	Boxes  ports.BallotBoxRepository
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type BallotBoxView struct {
	BoxID          string
	ElectionActive bool
	Candidates     []entities.Candidate
	WinnerName     string
	WinnerVotes    int
}

func (s Service) Open(ctx context.Context) (BallotBoxView, error) {
	boxID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return BallotBoxView{}, err
	}
	box := entities.NewBallotBox(boxID)
	if err := s.Boxes.SaveBallotBox(ctx, box); err != nil {
		return BallotBoxView{}, err
	}
	s.logger().Info("ballot box opened",
		"event", "ballot_box_opened",
		"module", "elections/ballot-box",
		"layer", "application",
		"box_id", boxID,
	)
	return viewOf(box), nil
}

func (s Service) Get(ctx context.Context, boxID string) (BallotBoxView, error) {
	box, err := s.load(ctx, boxID)
	if err != nil {
		return BallotBoxView{}, err
	}
	return viewOf(box), nil
}

func (s Service) ToggleElection(ctx context.Context, boxID string) (BallotBoxView, error) {
	return s.mutate(ctx, boxID, "ballot_box_election_toggled", func(box *entities.BallotBox) bool {
		box.ToggleElection()
		return true
	})
}

func (s Service) StartElection(ctx context.Context, boxID string) (BallotBoxView, error) {
	return s.mutate(ctx, boxID, "ballot_box_election_started", func(box *entities.BallotBox) bool {
		return box.StartElection()
	})
}

func (s Service) EndElection(ctx context.Context, boxID string) (BallotBoxView, error) {
	return s.mutate(ctx, boxID, "ballot_box_election_ended", func(box *entities.BallotBox) bool {
		return box.EndElection()
	})
}

func (s Service) RegisterCandidate(ctx context.Context, boxID string, name string) (BallotBoxView, error) {
	return s.mutate(ctx, boxID, "ballot_box_candidate_registered", func(box *entities.BallotBox) bool {
		box.RegisterCandidate(name)
		return true
	})
}

// CastVote reports false without error when no candidate matches name.
func (s Service) CastVote(ctx context.Context, boxID string, name string) (bool, error) {
	accepted := false
	_, err := s.mutate(ctx, boxID, "ballot_box_vote_cast", func(box *entities.BallotBox) bool {
		accepted = box.CastVote(name)
		return accepted
	})
	if err != nil {
		return false, err
	}
	if !accepted {
		s.logger().Warn("vote rejected for unknown candidate",
			"event", "ballot_box_vote_rejected",
			"module", "elections/ballot-box",
			"layer", "application",
			"box_id", strings.TrimSpace(boxID),
			"candidate", name,
		)
	}
	return accepted, nil
}

func (s Service) Result(ctx context.Context, boxID string) (string, error) {
	var result string
	_, err := s.mutate(ctx, boxID, "ballot_box_result_computed", func(box *entities.BallotBox) bool {
		result = box.ComputeResult()
		return true
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// mutate loads the box, applies change and saves only when change reports a
// state transition.
func (s Service) mutate(
	ctx context.Context,
	boxID string,
	event string,
	change func(box *entities.BallotBox) bool,
) (BallotBoxView, error) {
	box, err := s.load(ctx, boxID)
	if err != nil {
		return BallotBoxView{}, err
	}
	if !change(box) {
		return viewOf(box), nil
	}
	if err := s.Boxes.SaveBallotBox(ctx, box); err != nil {
		return BallotBoxView{}, err
	}
	s.logger().Debug("ballot box updated",
		"event", event,
		"module", "elections/ballot-box",
		"layer", "application",
		"box_id", box.ID(),
		"election_active", box.ElectionActive(),
	)
	return viewOf(box), nil
}

func (s Service) load(ctx context.Context, boxID string) (*entities.BallotBox, error) {
	boxID = strings.TrimSpace(boxID)
	if boxID == "" {
		return nil, domainerrors.ErrInvalidBallotBoxID
	}
	return s.Boxes.GetBallotBox(ctx, boxID)
}

func (s Service) logger() *slog.Logger {
	return ResolveLogger(s.Logger)
}

func viewOf(box *entities.BallotBox) BallotBoxView {
	return BallotBoxView{
		BoxID:          box.ID(),
		ElectionActive: box.ElectionActive(),
		Candidates:     box.Candidates(),
		WinnerName:     box.WinnerName(),
		WinnerVotes:    box.WinnerVotes(),
	}
}
