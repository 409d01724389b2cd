package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printer(cmd).Challenges(a.reg.All())
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "info <id>",
		Short:   "Describe a challenge",
		Example: "  aoc info 2024-06",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.reg.Lookup(args[0])
			if err != nil {
				return err
			}
			a.printer(cmd).Info(c)
			return nil
		},
	}
}
