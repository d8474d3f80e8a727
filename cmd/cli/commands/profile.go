package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/activibe/pkg/core/services"
	"github.com/jakechorley/activibe/pkg/seed"
)

// ProfileCmd creates the profile command
func ProfileCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your performance card (volunteer only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := services.VolunteerProfile(app.Ctx, app.Auth.User(), seed.Endorsements(), app.Logger)
			if err != nil {
				return err
			}

			printCard(cmd.OutOrStdout(), card)

			if share, _ := cmd.Flags().GetBool("share"); share {
				fmt.Fprintln(cmd.OutOrStdout(), card.ShareText())
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().Bool("share", false, "Also print the share message")

	return cmd
}

func printCard(out io.Writer, card *services.PerformanceCard) {
	fmt.Fprintf(out, "\n%s\n", card.VolunteerName)
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", len(card.VolunteerName)))

	if s := card.Session; s != nil {
		fmt.Fprintf(out, "This drive: %s (%s)\n", s.DriveName, s.NGOName)
		fmt.Fprintf(out, "  Active:   %s\n", s.ActiveTime)
		fmt.Fprintf(out, "  Posts:    %d/%d\n", s.PostsShared, s.PostLimit)
		fmt.Fprintf(out, "  Check-in: %s\n\n", s.CheckinID)
	}

	fmt.Fprintf(out, "Verified hours:   %d\n", card.TotalActiveHours)
	fmt.Fprintf(out, "Drives completed: %d\n", card.DrivesCompleted)
	fmt.Fprintf(out, "Endorsements:     %d\n", card.EndorsementCount)
	if len(card.EndorsedSkills) > 0 {
		fmt.Fprintf(out, "Endorsed skills:  %s\n", strings.Join(card.EndorsedSkills, ", "))
	}
	if len(card.OtherSkills) > 0 {
		fmt.Fprintf(out, "Other skills:     %s\n", strings.Join(card.OtherSkills, ", "))
	}

	if len(card.Endorsements) > 0 {
		fmt.Fprintln(out)
		for _, e := range card.Endorsements {
			fmt.Fprintf(out, "  %s %s · %s, %s\n", e.Emoji, e.BadgeName, e.NGOName, e.Date)
		}
	}
	fmt.Fprintln(out)
}
