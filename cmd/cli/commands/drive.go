package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/services"
)

const dateLayout = "2006-01-02"

// CreateDriveCmd creates the createDrive command
func CreateDriveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createDrive",
		Short: "Preview a new drive (NGO only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ngo, err := requireRole(app, model.RoleNGO)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			input := services.DriveInput{}
			input.Name, _ = flags.GetString("name")
			input.Schedule, _ = flags.GetString("schedule")
			input.Location, _ = flags.GetString("location")
			input.CauseArea, _ = flags.GetString("cause")
			input.Description, _ = flags.GetString("description")
			input.RRule, _ = flags.GetString("rrule")
			input.OccurrenceCount, _ = flags.GetInt("occurrences")
			input.Spots, _ = flags.GetInt("spots")
			input.PostLimit, _ = flags.GetInt("post-limit")
			input.ZoneRadius, _ = flags.GetInt("radius")

			// Unset steppers start from the configured defaults
			defaults := app.Cfg.DriveDefaults
			if !flags.Changed("spots") {
				input.Spots = defaults.Spots
			}
			if !flags.Changed("post-limit") {
				input.PostLimit = defaults.PostLimit
			}
			if !flags.Changed("radius") {
				input.ZoneRadius = defaults.ZoneRadius
			}

			if starts, _ := flags.GetString("starts"); starts != "" {
				input.StartsAt, err = time.Parse(dateLayout, starts)
				if err != nil {
					return fmt.Errorf("starts must be a date in YYYY-MM-DD format, got: %s", starts)
				}
			}

			preview, err := services.CreateDrive(app.Ctx, ngo, input, app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			d := preview.Drive
			fmt.Fprintf(out, "\n✓ Drive ready to publish\n\n")
			fmt.Fprintf(out, "ID:         %s\n", d.ID)
			fmt.Fprintf(out, "Name:       %s\n", d.Name)
			fmt.Fprintf(out, "When:       %s\n", d.Date)
			fmt.Fprintf(out, "Where:      %s\n", d.Location)
			fmt.Fprintf(out, "Spots:      %d\n", d.MaxVolunteers)
			fmt.Fprintf(out, "Post limit: %d per volunteer\n", d.PostLimit)
			fmt.Fprintf(out, "Zone:       %dm radius\n", d.GeofenceRadius)
			if d.CauseArea != "" {
				fmt.Fprintf(out, "Cause:      %s\n", d.CauseArea)
			}
			if len(preview.Occurrences) > 0 {
				fmt.Fprintf(out, "\nRepeats (%s):\n", input.RRule)
				for i, o := range preview.Occurrences {
					fmt.Fprintf(out, "  %2d. %s\n", i+1, o.Format("2006-01-02 (Monday)"))
				}
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Drive name")
	cmd.Flags().String("schedule", "", "Date and time as shown to volunteers")
	cmd.Flags().String("location", "", "Meeting point")
	cmd.Flags().String("cause", "", "Cause area")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().Int("spots", 0, "Volunteer spots, 5-500 (default from config)")
	cmd.Flags().Int("post-limit", 0, "Posts per volunteer, 1-10 (default from config)")
	cmd.Flags().Int("radius", 0, "Check-in zone radius in metres, 100-2000 (default from config)")
	cmd.Flags().String("rrule", "", "Recurrence rule, e.g. FREQ=WEEKLY;BYDAY=SU")
	cmd.Flags().String("starts", "", "First date of a recurring drive (YYYY-MM-DD)")
	cmd.Flags().Int("occurrences", 0, "How many upcoming dates to show for a recurring drive")

	return cmd
}

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show upcoming dates of the current drive from its configured recurrence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drive := app.Events.Drive()
			out := cmd.OutOrStdout()

			rule, ok := app.Cfg.Schedule(drive.ID)
			if !ok {
				fmt.Fprintf(out, "\n%s is a one-off drive on %s\n\n", drive.Name, drive.Date)
				return nil
			}

			count, _ := cmd.Flags().GetInt("count")
			from := time.Now()
			if s, _ := cmd.Flags().GetString("from"); s != "" {
				var err error
				from, err = time.Parse(dateLayout, s)
				if err != nil {
					return fmt.Errorf("from must be a date in YYYY-MM-DD format, got: %s", s)
				}
			}

			dates, err := services.UpcomingOccurrences(rule, from, count)
			if err != nil {
				return err
			}
			app.Logger.Debug("Listed drive schedule",
				zap.String("drive_id", drive.ID),
				zap.Int("occurrences", len(dates)))

			fmt.Fprintf(out, "\n%s repeats %s\n\n", drive.Name, rule)
			for i, d := range dates {
				fmt.Fprintf(out, "  %2d. %s\n", i+1, d.Format("2006-01-02 (Monday)"))
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().Int("count", 5, "Number of dates to show")
	cmd.Flags().String("from", "", "Start looking from this date (YYYY-MM-DD, default today)")

	return cmd
}
