package main

import (
	"github.com/spf13/cobra"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/application"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
)

func newListingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Manage the pets you put up for adoption",
	}
	cmd.AddCommand(
		newListingsListCmd(a),
		newListingsCreateCmd(a),
		newListingsDeleteCmd(a),
		newListingsStatusCmd(a),
	)
	return cmd
}

func (a *app) printListings(listings []listing.Listing) error {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			l.ID, l.Name, string(l.PetType), l.Breed, l.Age, string(l.Gender), l.Status.Label(),
		})
	}
	return a.emit(listings, []string{"ID", "Name", "Type", "Breed", "Age", "Gender", "Status"}, rows)
}

func newListingsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := newProfileScreen(a)
			if err := profile.Open(cmd.Context()); err != nil {
				return screenErr(err, profile.State().Err)
			}
			profile.Show(application.SubViewListings)
			return a.printListings(profile.Data().Listings)
		},
	}
}

func newListingsCreateCmd(a *app) *cobra.Command {
	var data listing.CreateListing
	var petType, gender, size string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Put a pet up for adoption",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := application.NewPostPetForm(a.client, a.logger)
			form.Edit(func(d *listing.CreateListing) {
				d.Name = data.Name
				d.Breed = data.Breed
				d.Age = data.Age
				d.Description = data.Description
				d.ImageURL = data.ImageURL
				if petType != "" {
					d.PetType = pet.PetType(petType)
				}
				if gender != "" {
					d.Gender = pet.Gender(gender)
				}
				if size != "" {
					d.Size = pet.Size(size)
				}
			})
			if err := form.Submit(cmd.Context()); err != nil {
				return screenErr(err, form.SubmitError())
			}
			id, _ := form.Submitted()
			if a.jsonOut {
				return printJSON(a.out, map[string]string{"listing_id": id})
			}
			printSuccess(a.out, "刊登成功 (%s)", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&data.Name, "name", "", "pet name")
	f.StringVar(&data.Breed, "breed", "", "breed")
	f.StringVar(&data.Age, "age", "", "age, e.g. \"2 歲\"")
	f.StringVar(&data.Description, "description", "", "free text description")
	f.StringVar(&data.ImageURL, "image", "", "photo reference")
	f.StringVar(&petType, "type", "", "狗狗, 貓咪, 鳥類, 兔子 or 其他")
	f.StringVar(&gender, "gender", "", "公 or 母")
	f.StringVar(&size, "size", "", "小型, 中型 or 大型")
	return cmd
}

func newListingsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := newProfileScreen(a)
			if err := profile.DeleteListing(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printListings(profile.Data().Listings)
		},
	}
}

func newListingsStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change a listing's status (active, inactive, adopted)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := listing.ParseListingStatus(args[1])
			if err != nil {
				return err
			}
			profile := newProfileScreen(a)
			if err := profile.Open(cmd.Context()); err != nil {
				return screenErr(err, profile.State().Err)
			}
			if err := profile.SetListingStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			return a.printListings(profile.Data().Listings)
		},
	}
}
