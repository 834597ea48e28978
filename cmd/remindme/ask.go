package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/remindme/internal/assistant"
	"github.com/Veraticus/remindme/internal/cli"
	"github.com/Veraticus/remindme/internal/service"
)

func askCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "ask <text...>",
		Short: "Ask the assistant about your tasks and goals",
		Example: `  remindme ask "I'm going to the supermarket"
  remindme ask what should I focus on today`,
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
			store, err := loadStore()
			if err != nil {
				return err
			}

			resp := newAssistant().Respond(cmd.Context(), buildRequest(store, input, location, at))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderResponse(resp))
			return err
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "where you are right now")
	return cmd
}

func chatCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore()
			if err != nil {
				return err
			}
			fixed := nowFlag != ""
			at, err := now()
			if err != nil {
				return err
			}

			chat := cli.NewChat(cmd.InOrStdin(), cmd.OutOrStdout(), newAssistant(), func(input string) assistant.Request {
				if !fixed {
					at = time.Now().In(at.Location())
				}
				return buildRequest(store, input, location, at)
			})
			return chat.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "where you are right now")
	return cmd
}

func buildRequest(store service.Store, input, location string, at time.Time) assistant.Request {
	return assistant.Request{
		Now:             at,
		Input:           input,
		CurrentLocation: location,
		Tasks:           store.ActiveTasks(),
		Goals:           store.ActiveGoals(),
		TagsByTaskID:    store.TagsByTaskID(),
	}
}
