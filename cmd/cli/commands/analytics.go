package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/services"
	"github.com/jakechorley/activibe/pkg/seed"
)

const barWidth = 20

// AnalyticsCmd creates the analytics command
func AnalyticsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show the drive analytics dashboard (NGO only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ngo, err := requireRole(app, model.RoleNGO)
			if err != nil {
				return err
			}

			dash, err := services.DriveAnalytics(app.Ctx, ngo, services.AnalyticsSource{
				Summary:    seed.AnalyticsSummary(),
				KPIs:       seed.NGOKPIs(),
				Volunteers: seed.AnalyticsVolunteers(),
				ZoneTime:   seed.ZoneTimeDistribution(),
				Roles:      seed.RoleFill(),
			}, app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := dash.Summary
			k := dash.KPIs

			fmt.Fprintf(out, "\n%s\n\n", ngo.Name)
			fmt.Fprintf(out, "Active drives: %d   Volunteers: %d   Avg check-in: %d%%   Endorsements: %d\n\n",
				k.ActiveDrives, k.TotalVolunteers, k.AvgCheckinRate, k.EndorsementsAwarded)

			fmt.Fprintf(out, "%s\n", app.Events.Drive().Name)
			fmt.Fprintf(out, "  Volunteers:       %d\n", s.TotalVolunteers)
			fmt.Fprintf(out, "  Avg active time:  %s\n", s.AvgActiveTime)
			fmt.Fprintf(out, "  Collective hours: %.1f\n", s.TotalCollectiveHours)
			fmt.Fprintf(out, "  Attendance:       %d%% (%d registered → %d checked in → %d completed)\n\n",
				s.AttendanceRate, s.RegisteredCount, s.CheckedInCount, s.CompletedCount)

			fmt.Fprintln(out, "Most active")
			for _, v := range dash.Volunteers {
				fmt.Fprintf(out, "  %d. %-14s %-18s %s %s\n", v.Rank, v.Name, v.Role, bar(v.Ratio), v.ActiveTime)
			}

			fmt.Fprintln(out, "\nRoles filled")
			for _, r := range dash.Roles {
				fmt.Fprintf(out, "  %-22s %d/%d  %3d%%  avg %.1fh\n", r.Role, r.Filled, r.Total, r.Percent, r.AvgHours)
			}

			fmt.Fprintln(out, "\nIn zone by hour")
			for _, slot := range dash.ZoneTime {
				ratio := 0.0
				if dash.PeakHour.Count > 0 {
					ratio = float64(slot.Count) / float64(dash.PeakHour.Count)
				}
				fmt.Fprintf(out, "  %-5s %s %d\n", slot.Hour, bar(ratio), slot.Count)
			}
			if dash.PeakHour.Count > 0 {
				fmt.Fprintf(out, "\nPeak: %s with %d volunteers in zone\n", dash.PeakHour.Hour, dash.PeakHour.Count)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func bar(ratio float64) string {
	n := int(ratio*barWidth + 0.5)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}
