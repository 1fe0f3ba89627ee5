package main

import (
	"context"

	"github.com/on-the-ground/monads_in_go/effects/console"
	"github.com/on-the-ground/monads_in_go/effects/log"
	"github.com/on-the-ground/monads_in_go/imperative"
	"github.com/spf13/cobra"
)

func newImperativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "imperative",
		Short: "Mutate state and read a password, the way imperative code does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, runImperative)
		},
	}
}

func runImperative(ctx context.Context) error {
	if err := imperative.Reassign(ctx); err != nil {
		return err
	}

	if _, err := imperative.FifthChar(ctx); err != nil {
		return err
	}

	count := 0
	first, count, err := imperative.NthChar(ctx, 0, count)
	if err != nil {
		return err
	}
	log.LogEff(ctx, log.LogDebug, "password read", map[string]interface{}{"count": count})
	return console.WriteLine(ctx, first)
}
