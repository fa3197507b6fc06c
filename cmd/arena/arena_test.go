package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "arena/contexts/league/lookup-service/domain/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("SEED_DEMO", "")

	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestElectionCommand(t *testing.T) {
	out, err := run(t, "election",
		"--candidate", "José da Silva",
		"--candidate", "Maria da Silva",
		"--vote", "José da Silva",
		"--vote", "José da Silva",
		"--vote", "Telma da Silva",
		"--vote", "Maria da Silva",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `vote rejected: "Telma da Silva" is not a candidate`)
	assert.Contains(t, out, "Nome vencedor: José da Silva. Votos: 2")
}

func TestElectionCommandWithoutCandidates(t *testing.T) {
	out, err := run(t, "election")
	require.NoError(t, err)
	assert.Contains(t, out, "Nome vencedor: . Votos: 0")
}

func TestPlayersCommand(t *testing.T) {
	out, err := run(t, "players", "1")
	require.NoError(t, err)
	for _, name := range []string{"José da Silva", "Carlos Souza", "Paulo Lima", "Rafael Costa"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "Bruno Alves")
}

func TestPlayersCommandRejectsBadID(t *testing.T) {
	_, err := run(t, "players", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestPlayerCommand(t *testing.T) {
	out, err := run(t, "player", "102")
	require.NoError(t, err)
	assert.Contains(t, out, "Paulo Lima")

	out, err = run(t, "player", "999")
	require.NoError(t, err)
	assert.Contains(t, out, "player 999 not found")
}

func TestTeamsCommand(t *testing.T) {
	out, err := run(t, "teams", "1", "--founded", "1990-01-01", "--direction", "newer_than")
	require.NoError(t, err)
	assert.Contains(t, out, "Leões")
	assert.Contains(t, out, "Gaviões")
	assert.NotContains(t, out, "Tigres")

	out, err = run(t, "teams", "1", "--founded", "1990-01-01", "--direction", "older_than")
	require.NoError(t, err)
	assert.Contains(t, out, "Tigres")
	assert.NotContains(t, out, "Leões")
}

func TestTeamsCommandRejectsUnknownDirection(t *testing.T) {
	_, err := run(t, "teams", "1", "--founded", "1990-01-01", "--direction", "sideways")
	require.ErrorIs(t, err, domainerrors.ErrInvalidSearch)
}

func TestTeamsCommandRejectsBadDate(t *testing.T) {
	_, err := run(t, "teams", "1", "--founded", "01/01/1990")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want YYYY-MM-DD")
}
