package main

import (
	"errors"
	"fmt"

	"github.com/tjper/spacex/internal/launch"

	"github.com/spf13/cobra"
)

var errNotPersisted = errors.New("saved launches not persisted")

func newSavedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved launches",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved launches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSavedList(cmd, a)
		},
	}

	add := &cobra.Command{
		Use:   "add <launch-id>...",
		Short: "Fetch launches and save them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedAdd(cmd, a, args)
		},
	}

	remove := &cobra.Command{
		Use:     "remove <launch-id>...",
		Aliases: []string{"rm"},
		Short:   "Remove saved launches",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavedRemove(cmd, a, args)
		},
	}

	clearAll := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved launch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSavedClear(cmd, a)
		},
	}

	cmd.AddCommand(list, add, remove, clearAll)
	return cmd
}

func runSavedList(cmd *cobra.Command, a *app) error {
	store, closeFn, err := a.favorites(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	items := launch.NewSaved(store).Load(cmd.Context())
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved launches.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), savedTable(items, a.markdown))
	return nil
}

func runSavedAdd(cmd *cobra.Command, a *app, ids []string) error {
	store, closeFn, err := a.favorites(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	detail := launch.NewDetail(a.logger, a.client(), store)
	for _, id := range ids {
		if err := detail.Fetch(cmd.Context(), id); err != nil {
			return fmt.Errorf("save launch; id: %s, error: %w", id, err)
		}

		store.Save(cmd.Context(), *detail.Launch())
		if !detail.IsSaved(cmd.Context()) {
			return fmt.Errorf("save launch; id: %s, error: %w", id, errNotPersisted)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", id)
	}
	return nil
}

func runSavedRemove(cmd *cobra.Command, a *app, ids []string) error {
	store, closeFn, err := a.favorites(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	for _, id := range ids {
		store.Unsave(cmd.Context(), id)
		if store.IsSaved(cmd.Context(), id) {
			return fmt.Errorf("remove launch; id: %s, error: %w", id, errNotPersisted)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", id)
	}
	return nil
}

func runSavedClear(cmd *cobra.Command, a *app) error {
	store, closeFn, err := a.favorites(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	store.Clear(cmd.Context())
	if n := len(store.LoadAll(cmd.Context())); n > 0 {
		return fmt.Errorf("clear saved launches; remaining: %d, error: %w", n, errNotPersisted)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Cleared saved launches.")
	return nil
}
