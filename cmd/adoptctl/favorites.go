package main

import (
	"github.com/spf13/cobra"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/application"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/favorites"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite pets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite pets",
			RunE: func(cmd *cobra.Command, args []string) error {
				store := favorites.NewStore(a.client, a.logger)
				screen := application.NewFavoritesScreen(a.client, store, a.logger)
				defer screen.Close()
				if err := screen.Open(cmd.Context()); err != nil {
					return screenErr(err, screen.State().Err)
				}
				pets := screen.Data()
				return a.emit(pets, petHeader, petRows(pets, func(string) bool { return true }))
			},
		},
		&cobra.Command{
			Use:   "ids",
			Short: "Print the ids in the favorite set",
			RunE: func(cmd *cobra.Command, args []string) error {
				store := favorites.NewStore(a.client, a.logger)
				if err := store.Load(cmd.Context()); err != nil {
					return screenErr(err, store.Err())
				}
				ids := store.IDs()
				rows := make([][]string, 0, len(ids))
				for _, id := range ids {
					rows = append(rows, []string{id})
				}
				return a.emit(ids, []string{"Pet ID"}, rows)
			},
		},
		&cobra.Command{
			Use:   "toggle ID",
			Short: "Add or remove a pet from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := favorites.NewStore(a.client, a.logger)
				if err := store.Load(cmd.Context()); err != nil {
					return screenErr(err, store.Err())
				}
				if err := store.Toggle(cmd.Context(), args[0]); err != nil {
					return err
				}
				if store.IsFavorite(args[0]) {
					printSuccess(a.out, "♥ %s added to favorites", args[0])
				} else {
					printSuccess(a.out, "%s removed from favorites", args[0])
				}
				return nil
			},
		},
	)
	return cmd
}
