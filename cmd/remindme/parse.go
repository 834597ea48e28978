package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/remindme/internal/cli"
	"github.com/Veraticus/remindme/internal/matcher"
	"github.com/Veraticus/remindme/internal/parser"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text...>",
		Short: "Show what a reminder sentence parses into",
		Example: `  remindme parse remind me to buy basil at the supermarket
  remindme parse pay the rent bill tomorrow, it is urgent`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := joinArgs(args)
			if err != nil {
				return err
			}
			at, err := now()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderParsed(parser.Parse(input, at)))
			return err
		},
	}
}

func intentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intent <text...>",
		Short: "Show the intent detected in a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := joinArgs(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderIntent(matcher.DetectIntent(input), matcher.IntentScores(input)))
			return err
		},
	}
}
