package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/services"
)

// LoginVolunteerCmd creates the loginVolunteer command
func LoginVolunteerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "loginVolunteer",
		Short: "Sign in as the demo volunteer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.LoginAsVolunteer()
			user := app.Auth.User()
			app.Logger.Info("Signed in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Signed in as %s (volunteer)\n\n", user.Name)
			return nil
		},
	}
}

// LoginNGOCmd creates the loginNGO command
func LoginNGOCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "loginNGO",
		Short: "Sign in as the demo NGO coordinator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.LoginAsNGO()
			user := app.Auth.User()
			app.Logger.Info("Signed in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Signed in as %s (NGO)\n\n", user.Name)
			return nil
		},
	}
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout()
			app.Logger.Info("Signed out")

			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Signed out")
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// WhoAmICmd creates the whoami command
func WhoAmICmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			user := app.Auth.User()
			if user == nil {
				fmt.Fprintln(out, "\nNot signed in (use loginVolunteer or loginNGO)")
				fmt.Fprintln(out)
				return nil
			}

			mode := "light"
			if app.Auth.DarkMode() {
				mode = "dark"
			}

			fmt.Fprintf(out, "\n%s (%s)\n", user.Name, user.Role)
			fmt.Fprintf(out, "ID:    %s\n", user.ID)
			if user.Location != "" {
				fmt.Fprintf(out, "Where: %s\n", user.Location)
			}
			fmt.Fprintf(out, "Theme: %s\n\n", mode)
			return nil
		},
	}
}

// ToggleDarkModeCmd creates the toggleDarkMode command
func ToggleDarkModeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleDarkMode",
		Short: "Switch between light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.ToggleDarkMode()

			if app.Auth.DarkMode() {
				fmt.Fprintln(cmd.OutOrStdout(), "\n🌙 Dark mode on")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "\n☀️  Dark mode off")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// requireRole returns the signed in user when they hold role
func requireRole(app *AppContext, role model.Role) (*model.User, error) {
	user := app.Auth.User()
	if err := services.RequireRole(user, role); err != nil {
		return nil, err
	}
	return user, nil
}
