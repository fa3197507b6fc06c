package entities

import "fmt"

const resultFormat = "Nome vencedor: %s. Votos: %d"

// BallotBox tracks an election: the registered candidates in insertion order,
// whether the election is running, and the last computed winner.
//
// Candidate names are not unique. Every lookup scans left to right and the
// first match wins. A BallotBox is not safe for concurrent use.
type BallotBox struct {
	id             string
	candidates     []Candidate
	electionActive bool
	winnerName     string
	winnerVotes    int
}

func NewBallotBox(id string) *BallotBox {
	return &BallotBox{
		id:         id,
		candidates: make([]Candidate, 0),
	}
}

// RestoreBallotBox rebuilds a box from persisted state. Candidates are copied.
func RestoreBallotBox(snapshot Snapshot) *BallotBox {
	candidates := make([]Candidate, len(snapshot.Candidates))
	copy(candidates, snapshot.Candidates)
	return &BallotBox{
		id:             snapshot.ID,
		candidates:     candidates,
		electionActive: snapshot.ElectionActive,
		winnerName:     snapshot.WinnerName,
		winnerVotes:    snapshot.WinnerVotes,
	}
}

func (b *BallotBox) ID() string {
	return b.id
}

func (b *BallotBox) ElectionActive() bool {
	return b.electionActive
}

// ToggleElection flips the election state whatever it currently is.
// Prefer StartElection and EndElection when the target state is known.
func (b *BallotBox) ToggleElection() {
	b.electionActive = !b.electionActive
}

// StartElection reports whether the state changed.
func (b *BallotBox) StartElection() bool {
	if b.electionActive {
		return false
	}
	b.electionActive = true
	return true
}

// EndElection reports whether the state changed.
func (b *BallotBox) EndElection() bool {
	if !b.electionActive {
		return false
	}
	b.electionActive = false
	return true
}

// RegisterCandidate appends a zero-vote candidate. Blank and repeated names are
// accepted as given.
func (b *BallotBox) RegisterCandidate(name string) {
	b.candidates = append(b.candidates, NewCandidate(name))
}

// CastVote adds one vote to the first candidate whose name equals name exactly.
// It does not consult the election state.
func (b *BallotBox) CastVote(name string) bool {
	for i := range b.candidates {
		if b.candidates[i].Name == name {
			b.candidates[i].AddVote()
			return true
		}
	}
	return false
}

// ComputeResult records and formats the winner. The first candidate seeds the
// scan and later ones only replace it with a strictly greater count, so ties go
// to whoever registered first. An empty box reports an empty name and 0 votes.
func (b *BallotBox) ComputeResult() string {
	b.winnerName = ""
	b.winnerVotes = 0
	for i, candidate := range b.candidates {
		if i == 0 || candidate.Votes > b.winnerVotes {
			b.winnerName = candidate.Name
			b.winnerVotes = candidate.Votes
		}
	}
	return fmt.Sprintf(resultFormat, b.winnerName, b.winnerVotes)
}

func (b *BallotBox) WinnerName() string {
	return b.winnerName
}

func (b *BallotBox) WinnerVotes() int {
	return b.winnerVotes
}

func (b *BallotBox) Candidates() []Candidate {
	items := make([]Candidate, len(b.candidates))
	copy(items, b.candidates)
	return items
}

func (b *BallotBox) LastCandidate() (Candidate, bool) {
	if len(b.candidates) == 0 {
		return Candidate{}, false
	}
	return b.candidates[len(b.candidates)-1], true
}

func (b *BallotBox) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.id,
		Candidates:     b.Candidates(),
		ElectionActive: b.electionActive,
		WinnerName:     b.winnerName,
		WinnerVotes:    b.winnerVotes,
	}
}

// Snapshot is the persisted shape of a BallotBox.
type Snapshot struct {
	ID             string
	Candidates     []Candidate
	ElectionActive bool
	WinnerName     string
	WinnerVotes    int
}
