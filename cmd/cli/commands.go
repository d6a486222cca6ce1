package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(pairingsCmd)
	rootCmd.AddCommand(deleteMatchesCmd)
	rootCmd.AddCommand(deletePlayersCmd)
	rootCmd.AddCommand(resetCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register NAME...",
	Short: "Register one or more players",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			if err := store.RegisterPlayer(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", name)
		}
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of registered players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := store.CountPlayers(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), count)
		return nil
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List registered players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := store.ListPlayers(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(players))
		for _, p := range players {
			rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name})
		}
		printTable(cmd.OutOrStdout(), []string{"ID", "Name"}, rows)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report WINNER LOSER",
	Short: "Record the result of a match by player id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winner, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid winner id %q: %w", args[0], err)
		}
		loser, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid loser id %q: %w", args[1], err)
		}
		if err := store.ReportMatch(cmd.Context(), winner, loser); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d beat %d\n", winner, loser)
		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print players ranked by wins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		standings, err := store.PlayerStandings(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(standings))
		for _, s := range standings {
			rows = append(rows, []string{
				strconv.FormatInt(s.ID, 10),
				s.Name,
				strconv.Itoa(s.Wins),
				strconv.Itoa(s.Matches),
			})
		}
		printTable(cmd.OutOrStdout(), []string{"ID", "Name", "Wins", "Matches"}, rows)
		return nil
	},
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "Print the pairings for the next round",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		round, err := store.NextRound(cmd.Context())
		if err != nil {
			return err
		}
		printRound(cmd.OutOrStdout(), round)
		return nil
	},
}

var deleteMatchesCmd = &cobra.Command{
	Use:   "delete-matches",
	Short: "Remove every recorded match",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteMatches(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted all matches")
		return nil
	},
}

var deletePlayersCmd = &cobra.Command{
	Use:   "delete-players",
	Short: "Remove every player (fails while matches reference them)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeletePlayers(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted all players")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all matches, then all players",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteMatches(cmd.Context()); err != nil {
			return err
		}
		if err := store.DeletePlayers(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tournament reset")
		return nil
	},
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func printRound(w io.Writer, round tournament.Round) {
	rows := make([][]string, 0, len(round.Pairings))
	for i, p := range round.Pairings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s (%d)", p.Name1, p.ID1),
			fmt.Sprintf("%s (%d)", p.Name2, p.ID2),
		})
	}
	printTable(w, []string{"Table", "Player", "Opponent"}, rows)
	if round.Bye != nil {
		fmt.Fprintf(w, "Bye: %s (%d)\n", round.Bye.Name, round.Bye.ID)
	}
}
