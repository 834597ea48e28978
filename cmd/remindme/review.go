package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/remindme/internal/cli"
	"github.com/Veraticus/remindme/internal/model"
	"github.com/Veraticus/remindme/internal/urgency"
)

func rankCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank open tasks by urgency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reviewTasks(cmd, "Tasks by urgency", func(tasks []model.Task, at time.Time) []model.Task {
				ranked := urgency.Rank(tasks, at)
				if limit > 0 && len(ranked) > limit {
					ranked = ranked[:limit]
				}
				out := make([]model.Task, len(ranked))
				for i, r := range ranked {
					out[i] = r.Task
				}
				return out
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many tasks")
	return cmd
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List pending tasks past their due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reviewTasks(cmd, "Overdue", urgency.Overdue)
		},
	}
}

func dueSoonCmd() *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "due-soon",
		Short: "List pending tasks due within a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			within := settings.DueWithin
			if cmd.Flags().Changed("within") {
				if hours <= 0 {
					return fmt.Errorf("--within must be positive, got %d", hours)
				}
				within = time.Duration(hours) * time.Hour
			}
			title := fmt.Sprintf("Due in the next %s", within)
			return reviewTasks(cmd, title, func(tasks []model.Task, at time.Time) []model.Task {
				return urgency.DueSoon(tasks, at, within)
			})
		},
	}

	cmd.Flags().IntVar(&hours, "within", 24, "look-ahead window in hours")
	return cmd
}

func reviewTasks(cmd *cobra.Command, title string, selectTasks func([]model.Task, time.Time) []model.Task) error {
	at, err := now()
	if err != nil {
		return err
	}
	store, err := loadStore()
	if err != nil {
		return err
	}

	tasks := selectTasks(store.ActiveTasks(), at)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderUrgency(title, tasks, at))
	return err
}

func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Show today's overview of tasks, goals and nudges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := now()
			if err != nil {
				return err
			}
			store, err := loadStore()
			if err != nil {
				return err
			}

			a := newAssistant()
			tasks := store.ActiveTasks()
			goals := store.ActiveGoals()

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.RenderDigest(a.Digest(tasks, goals, at))); err != nil {
				return err
			}

			if motivation, ok := a.DailyMotivation(cmd.Context(), goals, tasks); ok {
				_, err = fmt.Fprintln(out, "\n"+cli.BoldStyle.Render(motivation))
			}
			return err
		},
	}
}
