package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/application"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/favorites"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/navigation"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

func newPetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse the adoption catalog",
	}
	cmd.AddCommand(newPetsListCmd(a), newPetsShowCmd(a), newPetsContactCmd(a))
	return cmd
}

func newPetsListCmd(a *app) *cobra.Command {
	values := map[pet.Dimension]*string{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := pet.DefaultFilters()
			for dim, v := range values {
				if *v == "" {
					continue
				}
				next, err := filters.With(dim, *v)
				if err != nil {
					return err
				}
				filters = next
			}

			screen := application.NewExploreScreen(a.client, a.logger)
			if err := screen.Apply(cmd.Context(), filters); err != nil {
				return screenErr(err, screen.State().Err)
			}

			store := favorites.NewStore(a.client, a.logger)
			if err := store.Load(cmd.Context()); err != nil {
				a.logger.Warn("favorites unavailable", zap.Error(err))
			}
			pets := screen.Data()
			return a.emit(pets, petHeader, petRows(pets, store.IsFavorite))
		},
	}
	flags := []struct {
		dim  pet.Dimension
		name string
	}{
		{pet.DimLocation, "location"},
		{pet.DimAge, "age"},
		{pet.DimSize, "size"},
		{pet.DimGender, "gender"},
		{pet.DimType, "type"},
		{pet.DimSort, "sort"},
	}
	for _, f := range flags {
		values[f.dim] = cmd.Flags().String(f.name, "", fmt.Sprintf("one of %v", pet.Options[f.dim]))
	}
	return cmd
}

func newPetsShowCmd(a *app) *cobra.Command {
	var toggle bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := favorites.NewStore(a.client, a.logger)
			if err := store.Load(cmd.Context()); err != nil {
				a.logger.Warn("favorites unavailable", zap.Error(err))
			}
			screen := application.NewPetDetailsScreen(a.client, store, a.logger)
			if err := screen.Show(cmd.Context(), args[0]); err != nil {
				return screenErr(err, screen.State().Err)
			}
			if toggle {
				if err := screen.ToggleFavorite(cmd.Context()); err != nil {
					return err
				}
			}

			p, _ := screen.Pet()
			if a.jsonOut {
				return printJSON(a.out, p)
			}
			printTable(a.out, []string{"Field", "Value"}, [][]string{
				{"ID", p.ID},
				{"Name", p.Name},
				{"Breed", p.Breed},
				{"Age", p.Age},
				{"Gender", string(p.Gender)},
				{"Size", string(p.Size)},
				{"Type", string(p.PetType)},
				{"Location", p.Location},
				{"Fee", money(p.AdoptionFee)},
				{"Vaccinated", yesNo(p.IsVaccinated)},
				{"Neutered", yesNo(p.IsNeutered)},
				{"Tags", joinTags(p.Tags)},
				{"Favorite", yesNo(screen.IsFavorite())},
			})
			if p.Description != "" {
				fmt.Fprintln(a.out, p.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle-favorite", false, "flip the favorite state before printing")
	return cmd
}

// newPetsContactCmd opens the shelter conversation for a pet, the way the
// contact button on the details page does.
func newPetsContactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contact ID",
		Short: "Open the shelter conversation about a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetPetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			nav := navigation.NewNavigator(notification.NewCenter())
			nav.NavigateTo(navigation.ViewDetails, p)
			nav.ContactShelter(*p)

			profile := newProfileScreen(a)
			if err := profile.ApplyInitialThread(cmd.Context(), nav.TakeInitialThread()); err != nil {
				return screenErr(err, profile.Chat.State().Err)
			}
			return a.printThread(profile.Chat.ThreadID(), profile.Chat.Data())
		},
	}
}

func newHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show featured pets and adoption stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := application.NewHomeScreen(a.client, a.logger)
			if err := screen.Open(cmd.Context()); err != nil {
				return screenErr(err, screen.State().Err)
			}
			data := screen.Data()
			if a.jsonOut {
				return printJSON(a.out, data)
			}
			printTable(a.out, petHeader, petRows(data.Featured(), nil))
			rows := make([][]string, 0, len(data.Stories))
			for _, s := range data.Stories {
				rows = append(rows, []string{s.Author, s.PetName, s.Content})
			}
			printTable(a.out, []string{"Author", "Pet", "Story"}, rows)
			return nil
		},
	}
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in user and their counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.client.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := a.client.GetUserStats(cmd.Context())
			if err != nil {
				return err
			}
			email := u.Email
			if a.cfg.UserEmail != "" {
				email = a.cfg.UserEmail
			}
			if a.jsonOut {
				return printJSON(a.out, map[string]any{"user": u, "stats": stats})
			}
			printTable(a.out, []string{"Field", "Value"}, [][]string{
				{"Name", u.Name},
				{"Email", email},
				{"Member since", u.MemberSince},
				{"Applications", strconv.Itoa(stats.ApplicationsCount)},
				{"Favorites", strconv.Itoa(stats.FavoritesCount)},
				{"Visits", strconv.Itoa(stats.VisitsCount)},
			})
			return nil
		},
	}
}

func newProfileScreen(a *app) *application.ProfileScreen {
	return application.NewProfileScreen(application.ProfileDeps{
		Applications: a.client,
		Listings:     a.client,
		Inbox:        a.client,
		Catalog:      a.client,
		Users:        a.client,
	}, a.logger)
}
