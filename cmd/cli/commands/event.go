package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/services"
	"github.com/jakechorley/activibe/pkg/core/stores"
	"github.com/jakechorley/activibe/pkg/seed"
)

// EnterZoneCmd creates the enterZone command
func EnterZoneCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "enterZone",
		Short: "Simulate walking into the drive's check-in zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, model.RoleVolunteer); err != nil {
				return err
			}

			result := services.EnterZone(app.Ctx, app.Events, app.Logger)
			out := cmd.OutOrStdout()
			if result.Celebrate {
				fmt.Fprintf(out, "\n🎉 Checked in to %s!\n", result.State.ActiveDrive.DriveName)
				fmt.Fprintf(out, "Check-in ID: %s\n", result.State.ActiveDrive.CheckinID)
			} else {
				fmt.Fprintln(out, "\n📍 Back in the zone, timer resumed")
			}
			printEventState(out, result.State)
			return nil
		},
	}
}

// ExitZoneCmd creates the exitZone command
func ExitZoneCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exitZone",
		Short: "Simulate leaving the check-in zone (pauses the timer)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, model.RoleVolunteer); err != nil {
				return err
			}

			state, err := services.LeaveZone(app.Ctx, app.Events, app.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n⏸  Left the zone, timer paused")
			printEventState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

// PostCmd creates the post command
func PostCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "post [caption]",
		Short: "Share a verified post (live while in zone, post-event once ended)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireRole(app, model.RoleVolunteer)
			if err != nil {
				return err
			}
			caption := strings.Join(args, " ")

			var post *model.FeedPost
			if app.Events.Snapshot().EventEnded {
				post, err = services.SharePostEventPost(app.Ctx, app.Events, app.Feed, *user, caption, app.Logger)
			} else {
				post, err = services.ShareLivePost(app.Ctx, app.Events, app.Feed, *user, caption, app.Logger)
			}
			if err != nil {
				return err
			}

			state := app.Events.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Posted to the feed (%d/%d)\n\n", state.PostCount, state.PostLimit)
			printPost(cmd.OutOrStdout(), *post)
			return nil
		},
	}
}

// EndEventCmd creates the endEvent command
func EndEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "endEvent",
		Short: "End the event; post-event posts become available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireRole(app, model.RoleVolunteer); err != nil {
				return err
			}

			state, err := services.EndEvent(app.Ctx, app.Events, app.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n🏁 Event ended")
			printEventState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

// CheckoutCmd creates the checkout command
func CheckoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Check out of the drive and show your performance card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireRole(app, model.RoleVolunteer)
			if err != nil {
				return err
			}

			card, err := services.Checkout(app.Ctx, app.Events, *user, seed.Endorsements(), app.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Checked out")
			printCard(cmd.OutOrStdout(), card)
			return nil
		},
	}
}

// EventStatusCmd creates the eventStatus command
func EventStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eventStatus",
		Short: "Show the current check-in session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Events.Snapshot()
			out := cmd.OutOrStdout()
			if state.ActiveDrive == nil {
				drive := app.Events.Drive()
				fmt.Fprintf(out, "\nNo active session. Next drive: %s, %s (%s)\n\n", drive.Name, drive.Date, drive.Location)
				return nil
			}

			fmt.Fprintf(out, "\n%s · %s\n", state.ActiveDrive.DriveName, state.ActiveDrive.NGOName)
			printEventState(out, state)
			return nil
		},
	}
}

func printEventState(out io.Writer, state stores.ActiveEventState) {
	fmt.Fprintf(out, "Status: %s\n", state.Status())
	fmt.Fprintf(out, "Active: %s\n", services.FormatTimer(state.TimerSeconds))
	fmt.Fprintf(out, "Posts:  %d/%d\n\n", state.PostCount, state.PostLimit)
}
