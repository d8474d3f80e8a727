package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// FeedCmd creates the feed command
func FeedCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the feed for the selected tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _ := cmd.Flags().GetString("tab")
			if tab != "" {
				if err := setTab(app, tab); err != nil {
					return err
				}
			}

			posts := app.Feed.Visible()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nFeed [%s] (%d posts)\n\n", app.Feed.Tab(), len(posts))
			for _, post := range posts {
				printPost(out, post)
			}
			return nil
		},
	}

	cmd.Flags().String("tab", "", "Switch tab before showing: all, drives or updates")

	return cmd
}

// SetFeedTabCmd creates the setFeedTab command
func SetFeedTabCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setFeedTab <all|drives|updates>",
		Short: "Select which posts the feed shows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setTab(app, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Feed tab set to %s (%d posts)\n\n", app.Feed.Tab(), len(app.Feed.Visible()))
			return nil
		},
	}
}

// RefreshFeedCmd creates the refreshFeed command
func RefreshFeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refreshFeed",
		Short: "Reload the feed, dropping posts shared this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dropped := len(app.Feed.Posts())
			app.Feed.RefreshFeed()
			dropped -= len(app.Feed.Posts())

			app.Logger.Debug("Feed refreshed", zap.Int("dropped_posts", dropped))
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Feed refreshed (%d posts)\n\n", len(app.Feed.Posts()))
			return nil
		},
	}
}

func setTab(app *AppContext, tab string) error {
	t := model.FeedTab(tab)
	if !t.IsValid() {
		return fmt.Errorf("unknown feed tab %q (want all, drives or updates)", tab)
	}
	app.Feed.SetFeedTab(t)
	return nil
}

func printPost(out io.Writer, post model.FeedPost) {
	badge := ""
	switch post.VerifiedBadge {
	case model.VerifiedLive:
		badge = " [📍 Live verified]"
	case model.VerifiedPostEvent:
		badge = " [✅ Post-event]"
	}

	fmt.Fprintf(out, "• %s%s · %s\n", post.AuthorName, badge, post.Timestamp)
	if post.DriveName != "" {
		fmt.Fprintf(out, "  %s\n", post.DriveName)
	}
	fmt.Fprintf(out, "  %s\n", post.Caption)
	if post.SkillMatch != "" {
		fmt.Fprintf(out, "  🎯 %s\n", post.SkillMatch)
	}
	if post.CTALabel != "" {
		fmt.Fprintf(out, "  [%s]\n", post.CTALabel)
	}
	fmt.Fprintf(out, "  ♥ %d  💬 %d\n\n", post.Likes, post.Comments)
}
