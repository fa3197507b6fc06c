// Package ballotbox implements the ballot box inside the elections context.
//
// The module owns candidate registration, vote casting against registered
// candidates, the election on/off state, and winner computation. The aggregate
// lives in domain/entities; application wraps it in load-mutate-save use cases
// over the BallotBoxRepository port.
package ballotbox
