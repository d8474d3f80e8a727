package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NotificationsCmd creates the notifications command
func NotificationsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, unread first marked with •",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			items := app.Notifications.Items()

			fmt.Fprintf(out, "\nNotifications (%d unread)\n\n", app.Notifications.Unread())
			for _, n := range items {
				marker := " "
				if !n.Read {
					marker = "•"
				}
				fmt.Fprintf(out, "%s %-8s %s · %s\n", marker, n.ID, n.Title, n.Timestamp)
				fmt.Fprintf(out, "           %s\n", n.Body)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

// MarkReadCmd creates the markRead command
func MarkReadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "markRead <notification_id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Notifications.MarkRead(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ %d unread\n\n", app.Notifications.Unread())
			return nil
		},
	}
}

// MarkAllReadCmd creates the markAllRead command
func MarkAllReadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "markAllRead",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Notifications.MarkAllRead()
			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ All notifications read")
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
