package entities

// Candidate is a named vote counter owned by a BallotBox.
type Candidate struct {
	Name  string
	Votes int
}

func NewCandidate(name string) Candidate {
	return Candidate{Name: name}
}

func (c *Candidate) AddVote() {
	c.Votes++
}

func (c Candidate) VoteCount() int {
	return c.Votes
}
