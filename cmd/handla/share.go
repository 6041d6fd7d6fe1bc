package main

import (
	"errors"

	"github.com/spf13/cobra"

	"handla/internal/lists"
	"handla/internal/store"
	"handla/internal/ui"
)

var shareCmd = &cobra.Command{
	Use:   "share <email>",
	Short: "Share the active list with another user",
	Long: `Share makes another user a member of the active list. They must
have used handla at least once so their account exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func runShare(cmd *cobra.Command, args []string) error {
	email := args[0]
	err := lists.Invite(cmd.Context(), app.db, app.active.ID, email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		ui.Fail("no user with that email; ask them to run handla first")
		return err
	case err != nil:
		ui.Fail(err.Error())
		return err
	}
	ui.OK("shared " + app.active.Name + " with " + email)
	return nil
}
