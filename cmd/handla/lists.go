package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"handla/internal/model"
	"handla/internal/session"
	"handla/internal/ui"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show your lists",
	RunE:  runLists,
}

var newCmd = &cobra.Command{
	Use:   "new <name>...",
	Short: "Create a list and make it active",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNew,
}

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active list",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

func runLists(cmd *cobra.Command, args []string) error {
	for _, l := range app.lists {
		mark := "  "
		name := l.Name
		if l.ID == app.active.ID {
			mark = ui.Good.Render("* ")
			name = ui.Title.Render(name)
		}
		fmt.Println(mark + name + "  " + ui.Muted.Render(l.ID))
	}
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		ui.Fail("empty list name")
		return fmt.Errorf("empty list name")
	}
	if _, exists := findList(app.lists, name); exists {
		ui.Fail("a list named " + name + " already exists")
		return fmt.Errorf("list %q exists", name)
	}

	l, err := app.db.CreateList(cmd.Context(), name, app.userID)
	if err != nil {
		ui.Fail(err.Error())
		return err
	}
	if err := app.db.UpsertMember(cmd.Context(), model.Membership{
		ListID: l.ID, UserID: app.userID, Role: model.RoleOwner,
	}); err != nil {
		ui.Fail(err.Error())
		return err
	}
	return activate(l)
}

func runUse(cmd *cobra.Command, args []string) error {
	l, ok := findList(app.lists, args[0])
	if !ok {
		ui.Fail("no list named " + args[0])
		return fmt.Errorf("no list %q", args[0])
	}
	return activate(l)
}

func activate(l model.List) error {
	if err := app.sess.Save(session.State{ActiveListID: l.ID}); err != nil {
		ui.Fail(err.Error())
		return err
	}
	ui.OK("active list: " + l.Name)
	return nil
}
