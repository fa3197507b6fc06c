package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	candidateF = "candidate"
	voteF      = "vote"
)

// ElectionCmd runs a whole election in one go: open a box, register the
// candidates, start, cast the votes, end and print the result.
func ElectionCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "election",
		Short: "Run an election and print the winner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidates, err := cmd.Flags().GetStringArray(candidateF)
			if err != nil {
				return err
			}
			votes, err := cmd.Flags().GetStringArray(voteF)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			service := s.app.Elections.Service
			box, err := service.Open(ctx)
			if err != nil {
				return err
			}
			for _, name := range candidates {
				if _, err := service.RegisterCandidate(ctx, box.BoxID, name); err != nil {
					return err
				}
			}
			if _, err := service.StartElection(ctx, box.BoxID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range votes {
				accepted, err := service.CastVote(ctx, box.BoxID, name)
				if err != nil {
					return err
				}
				if !accepted {
					if _, err := fmt.Fprintf(out, "vote rejected: %q is not a candidate\n", name); err != nil {
						return err
					}
				}
			}
			if _, err := service.EndElection(ctx, box.BoxID); err != nil {
				return err
			}

			result, err := service.Result(ctx, box.BoxID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, result)
			return err
		},
	}
	cmd.Flags().StringArray(candidateF, nil, "Candidate name, repeat for each candidate")
	cmd.Flags().StringArray(voteF, nil, "Vote for a candidate by exact name, repeat per vote")
	return cmd
}
