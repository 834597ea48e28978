package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/remindme/internal/chain"
	"github.com/Veraticus/remindme/internal/cli"
	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/model"
)

func chainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain [name]",
		Short: "Show a task chain's next step, progress and health",
		Long:  "Show a named task chain from the snapshot. Without a name, list the chains.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := now()
			if err != nil {
				return err
			}
			store, err := loadStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names := store.ChainNames()
				if len(names) == 0 {
					_, err = fmt.Fprintln(out, cli.SubtleStyle.Render("No chains in the snapshot."))
					return err
				}
				for _, name := range names {
					if _, err := fmt.Fprintln(out, cli.ChainIcon+" "+name); err != nil {
						return err
					}
				}
				return nil
			}

			tasks, err := store.Chain(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.RenderChain(chain.Build(args[0], tasks, at), at))
			return err
		},
	}
}

func milestonesCmd() *cobra.Command {
	var suggest bool

	cmd := &cobra.Command{
		Use:   "milestones <goal-id>",
		Short: "Show a goal's milestones, the next one to tackle, and what blocks it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("goal id must be a number, got %q", args[0]), err)
			}
			store, err := loadStore()
			if err != nil {
				return err
			}
			goal, err := store.Goal(id)
			if err != nil {
				return err
			}

			milestones := store.MilestonesFor(id)
			var next *model.Milestone
			if m, ok := chain.SuggestNextMilestone(milestones, store.CompletedMilestones(id)); ok {
				next = &m
			}

			allGoals := store.AllGoals()
			titles := make(map[int64]string, len(allGoals))
			for _, g := range allGoals {
				titles[g.ID] = g.Title
			}
			dep := chain.CheckGoalDependencies(goal, allGoals, store.Dependencies())

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.RenderMilestones(goal, chain.BuildMilestoneChain(milestones), next, dep, titles)); err != nil {
				return err
			}

			if suggest && len(milestones) == 0 {
				if ideas, ok := newAssistant().SuggestMilestones(cmd.Context(), goal); ok {
					if _, err := fmt.Fprintln(out, "\n"+cli.BoldStyle.Render("Suggested milestones")); err != nil {
						return err
					}
					for i, idea := range ideas {
						if _, err := fmt.Fprintf(out, "  %d. %s\n", i+1, idea); err != nil {
							return err
						}
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "ask the generator for milestones when the goal has none")
	return cmd
}
