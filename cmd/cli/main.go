package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	baseURL    string
	timeout    time.Duration
	outputJSON bool
	noColor    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leaguebudget-cli",
		Short:         "League budget CLI tool",
		Long:          `A command line interface for the league budget API: manager budgets and market recommendations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the league budget API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print raw JSON instead of a table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(budgetsCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(predictionsCmd())

	return rootCmd
}

func budgetsCmd() *cobra.Command {
	var since, startBudget string

	cmd := &cobra.Command{
		Use:   "budgets <league-id>",
		Short: "Show the estimated budget of every manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := fetchBudgets(cmd.Context(), args[0], since, startBudget)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			renderBudgets(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Season start (YYYY-MM-DD), overrides the league profile")
	cmd.Flags().StringVar(&startBudget, "start-budget", "", "Start budget, overrides the league profile")
	return cmd
}

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Market and squad recommendations",
	}

	marketCmd := &cobra.Command{
		Use:   "market <league-id>",
		Short: "Players on the market worth bidding on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := fetchMarket(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), table)
			}
			renderMarket(cmd.OutOrStdout(), table)
			return nil
		},
	}

	squadCmd := &cobra.Command{
		Use:   "squad <league-id>",
		Short: "Predictions for the players you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := fetchSquad(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), table)
			}
			renderSquad(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.AddCommand(marketCmd, squadCmd)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	b, err := jsonIndent(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
