package main

import (
	"fmt"

	"github.com/tjper/spacex/internal/launch"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDetails bounds the detail requests launches show issues at
// once.
const maxConcurrentDetails = 4

func newLaunchesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launches",
		Short: "Browse past launches",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the most recent past launches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLaunchesList(cmd, a)
		},
	}
	list.Flags().Int("page-size", 15, "Maximum number of launches to list")

	show := &cobra.Command{
		Use:   "show <launch-id>...",
		Short: "Show the detail of one or more launches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunchesShow(cmd, a, args)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func runLaunchesList(cmd *cobra.Command, a *app) error {
	list := launch.NewList(a.logger, a.client(), a.cfg.PageSize())
	if err := list.Fetch(cmd.Context()); err != nil {
		return fmt.Errorf("list launches; error: %w", err)
	}

	launches := list.Launches()
	if len(launches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No launches.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), summaryTable(launches, a.markdown))
	return nil
}

func runLaunchesShow(cmd *cobra.Command, a *app, ids []string) error {
	saved, closeFn, err := a.favorites(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	client := a.client()
	details := make([]spacex.LaunchDetail, len(ids))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentDetails)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			detail, err := client.FetchLaunchDetail(ctx, id)
			if err != nil {
				return fmt.Errorf("show launch; id: %s, error: %w", id, err)
			}
			details[i] = *detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, detail := range details {
		isSaved := saved.IsSaved(cmd.Context(), detail.ID)
		fmt.Fprintln(cmd.OutOrStdout(), detailTable(detail, isSaved, a.markdown))
	}
	return nil
}
