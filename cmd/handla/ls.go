package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"handla/internal/model"
	"handla/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Print the active list",
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	items, err := app.db.ItemsByList(cmd.Context(), app.active.ID)
	if err != nil {
		ui.Fail(err.Error())
		return err
	}

	todo, done := model.Partition(items)

	header := fmt.Sprintf("%s  %s",
		ui.Title.Render(app.active.Name),
		ui.Muted.Render(fmt.Sprintf("%d to buy · %d bought", len(todo), len(done))))

	lines := []string{header, ui.ProgressBar(len(done), len(items), 28), ""}
	if len(todo) == 0 {
		lines = append(lines, ui.Muted.Render("nothing to buy"))
	} else {
		lines = append(lines, groupedLines(todo)...)
	}
	if len(done) > 0 {
		lines = append(lines, "", ui.Accent.Render("Bought"))
		for _, it := range done {
			lines = append(lines, ui.Done.Render("☑ "+it.Name))
		}
	}

	fmt.Println(ui.Panel(lines))
	return nil
}

// groupedLines renders the unbought items per category group.
func groupedLines(todo []model.Item) []string {
	var lines []string
	for i, g := range model.GroupByCategory(todo) {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.Accent.Render(g.Category))
		for _, it := range g.Items {
			lines = append(lines, "☐ "+it.Name)
		}
	}
	return lines
}
