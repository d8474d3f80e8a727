package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/services"
)

// AwardBadgeCmd creates the awardBadge command
func AwardBadgeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "awardBadge <volunteer_id> <badge_id>",
		Short: "Award a badge to a drive volunteer (NGO only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ngo, err := requireRole(app, model.RoleNGO)
			if err != nil {
				return err
			}

			award, err := services.AwardBadge(app.Ctx, app.Badges, ngo, args[0], args[1], app.Logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s awarded to %s\n", award.Badge.Emoji, award.Badge.Name, award.Volunteer.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s now holds: %s\n\n", award.Volunteer.Name, strings.Join(award.VolunteerBadges, ", "))
			return nil
		},
	}
}

// BadgesCmd creates the badges command
func BadgesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List badge types and what has been awarded at this drive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "\nBadges")
			for _, b := range app.Badges.BadgeTypes() {
				fmt.Fprintf(out, "  %-9s %s %-16s %d of %d left\n", b.ID, b.Emoji, b.Name, app.Badges.Remaining(b.ID), b.MaxPerDrive)
			}

			fmt.Fprintln(out, "\nVolunteers")
			for _, v := range app.Badges.Volunteers() {
				awarded := app.Badges.Awarded(v.ID)
				held := "-"
				if len(awarded) > 0 {
					held = strings.Join(awarded, ", ")
				}
				fmt.Fprintf(out, "  %-5s %-14s %s\n", v.ID, v.Name, held)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
