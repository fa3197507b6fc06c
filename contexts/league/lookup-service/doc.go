// Package lookupservice implements player and team lookups inside the league
// context.
//
// PlayerService and TeamService compose three narrow store ports (leagues,
// teams, players). The services hold no state of their own; every answer comes
// from the injected stores, so the services can be exercised with test doubles.
package lookupservice
