package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"handla/internal/engine"
	"handla/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add an item to the active list",
	Long: `Add puts an item on the active list. The category is picked
automatically from the name.

Example:
  handla add mjölk
  handla add "coca cola"
  handla add --list Stugan grillkol`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	eng, err := loadedEngine(cmd)
	if err != nil {
		ui.Fail(err.Error())
		return err
	}

	res, err := eng.Add(cmd.Context(), strings.Join(args, " "), false)
	switch {
	case errors.Is(err, engine.ErrDuplicate):
		ui.Fail("already on the list")
		return err
	case err != nil:
		ui.Fail(err.Error())
		return err
	}

	if res.Reactivated {
		ui.OK(fmt.Sprintf("%s moved back to the list", res.Item.Name))
		return nil
	}
	ui.OK(fmt.Sprintf("added %s (%s)", res.Item.Name, res.Item.Category))
	return nil
}
