package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"arena/contexts/league/lookup-service/domain/entities"
)

const (
	foundedF   = "founded"
	directionF = "direction"

	dateLayout = "2006-01-02"
)

func PlayersCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "players <league-id>",
		Short: "List the players of every team in a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := parseID(args[0])
			if err != nil {
				return err
			}
			players, err := s.app.League.Players.GetForLeague(cmd.Context(), leagueID)
			if err != nil {
				return err
			}
			writePlayers(cmd.OutOrStdout(), players)
			return nil
		},
	}
}

func PlayerCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := parseID(args[0])
			if err != nil {
				return err
			}
			player, found, err := s.app.League.Players.GetByID(cmd.Context(), playerID)
			if err != nil {
				return err
			}
			if !found {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "player %d not found\n", playerID)
				return err
			}
			writePlayers(cmd.OutOrStdout(), []entities.Player{player})
			return nil
		},
	}
}

func TeamsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams <league-id>",
		Short: "Search a league's teams by founding date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := parseID(args[0])
			if err != nil {
				return err
			}
			rawFounded, err := cmd.Flags().GetString(foundedF)
			if err != nil {
				return err
			}
			founded, err := time.Parse(dateLayout, rawFounded)
			if err != nil {
				return fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", foundedF, rawFounded)
			}
			rawDirection, err := cmd.Flags().GetString(directionF)
			if err != nil {
				return err
			}

			teams, err := s.app.League.Teams.Search(cmd.Context(), entities.TeamSearch{
				LeagueID:     leagueID,
				FoundingDate: founded,
				Direction:    entities.SearchDateDirection(rawDirection),
			})
			if err != nil {
				return err
			}
			writeTeams(cmd.OutOrStdout(), teams)
			return nil
		},
	}
	cmd.Flags().String(foundedF, "", "Founding date to compare against (YYYY-MM-DD)")
	cmd.Flags().String(directionF, string(entities.NewerThan), "newer_than or older_than")
	_ = cmd.MarkFlagRequired(foundedF)
	return cmd
}

func writePlayers(w io.Writer, players []entities.Player) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Born", "Team"})
	for _, player := range players {
		table.Append([]string{
			strconv.FormatInt(player.ID, 10),
			player.FullName(),
			player.DateOfBirth.Format(dateLayout),
			strconv.FormatInt(player.TeamID, 10),
		})
	}
	table.Render()
}

func writeTeams(w io.Writer, teams []entities.Team) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "League", "Founded"})
	for _, team := range teams {
		table.Append([]string{
			strconv.FormatInt(team.ID, 10),
			team.Name,
			strconv.FormatInt(team.LeagueID, 10),
			team.FoundingDate.Format(dateLayout),
		})
	}
	table.Render()
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}
