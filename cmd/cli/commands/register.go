package commands

import "github.com/spf13/cobra"

// Register adds every command to root. The commands read app when they run,
// so it may be filled in after registration.
func Register(root *cobra.Command, app *AppContext) {
	root.AddCommand(LoginVolunteerCmd(app))
	root.AddCommand(LoginNGOCmd(app))
	root.AddCommand(LogoutCmd(app))
	root.AddCommand(WhoAmICmd(app))
	root.AddCommand(ToggleDarkModeCmd(app))

	root.AddCommand(FeedCmd(app))
	root.AddCommand(SetFeedTabCmd(app))
	root.AddCommand(RefreshFeedCmd(app))

	root.AddCommand(NotificationsCmd(app))
	root.AddCommand(MarkReadCmd(app))
	root.AddCommand(MarkAllReadCmd(app))

	root.AddCommand(EnterZoneCmd(app))
	root.AddCommand(ExitZoneCmd(app))
	root.AddCommand(PostCmd(app))
	root.AddCommand(EndEventCmd(app))
	root.AddCommand(CheckoutCmd(app))
	root.AddCommand(EventStatusCmd(app))

	root.AddCommand(CreateDriveCmd(app))
	root.AddCommand(ScheduleCmd(app))
	root.AddCommand(AnalyticsCmd(app))
	root.AddCommand(AwardBadgeCmd(app))
	root.AddCommand(BadgesCmd(app))
	root.AddCommand(ProfileCmd(app))

	root.AddCommand(InteractiveCmd(app))
}
