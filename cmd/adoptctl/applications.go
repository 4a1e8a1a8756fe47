package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/application"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
)

func newApplicationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Submit and review adoption applications",
	}
	cmd.AddCommand(newApplicationsListCmd(a), newApplicationsShowCmd(a), newApplicationsSubmitCmd(a))
	return cmd
}

func applicationRow(ap adoption.Application, petName string) []string {
	interview, _ := ap.Interview()
	return []string{ap.ID, ap.PetID, petName, ap.DisplayStatus(), interview, ap.CreatedAt}
}

var applicationHeader = []string{"ID", "Pet ID", "Pet", "Status", "Interview", "Created"}

func newApplicationsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := newProfileScreen(a)
			if err := profile.Open(cmd.Context()); err != nil {
				return screenErr(err, profile.State().Err)
			}
			apps := profile.Data().Applications
			rows := make([][]string, 0, len(apps))
			for _, ap := range apps {
				p, _ := profile.PetForApplication(ap)
				rows = append(rows, applicationRow(ap, p.Name))
			}
			return a.emit(apps, applicationHeader, rows)
		},
	}
}

func newApplicationsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.client.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.emit(ap, applicationHeader, [][]string{applicationRow(*ap, "")})
		},
	}
}

// newApplicationsSubmitCmd walks the three-step form with values taken from
// flags and submits on the last step.
func newApplicationsSubmitCmd(a *app) *cobra.Command {
	var (
		housing  string
		outdoor  string
		renting  bool
		hasPets  bool
		exp      string
		fullName string
		phone    string
		email    string
		agreed   bool
	)
	cmd := &cobra.Command{
		Use:   "submit PET_ID",
		Short: "Apply to adopt a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = a.cfg.UserEmail
			}
			form := application.NewAdoptionForm(a.client, args[0], a.logger)
			form.Edit(func(d *adoption.CreateApplication) {
				if housing != "" {
					d.HousingType = adoption.HousingType(housing)
				}
				if outdoor != "" {
					d.OutdoorSpace = outdoor
				}
				d.IsRenting = renting
				d.HasPets = hasPets
				d.Experience = exp
				d.FullName = fullName
				d.Phone = phone
				d.Email = email
				d.Agreed = agreed
			})

			for form.Step() < application.StepContact {
				if err := form.Next(cmd.Context()); err != nil {
					return err
				}
			}
			if !form.CanSubmit() {
				return fmt.Errorf("%s: --name, --phone and --agree are required", form.StepTitle())
			}
			if err := form.Next(cmd.Context()); err != nil {
				return screenErr(err, form.SubmitError())
			}

			id, _ := form.Submitted()
			if a.jsonOut {
				return printJSON(a.out, map[string]string{"application_id": id})
			}
			printSuccess(a.out, "申請已送出 (%s)", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&housing, "housing", "", "house, apartment, condo or farm")
	f.StringVar(&outdoor, "outdoor", "", "outdoor space description")
	f.BoolVar(&renting, "renting", false, "the home is rented")
	f.BoolVar(&hasPets, "has-pets", false, "other pets live in the home")
	f.StringVar(&exp, "experience", "", "previous pet experience")
	f.StringVar(&fullName, "name", "", "applicant full name")
	f.StringVar(&phone, "phone", "", "contact phone")
	f.StringVar(&email, "email", "", "contact email (defaults to ADOPT_USER_EMAIL)")
	f.BoolVar(&agreed, "agree", false, "accept the adoption terms")
	return cmd
}
