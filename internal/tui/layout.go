package tui

import "handla/internal/model"

// The screen is a fixed vertical stack: title, add input, notice line,
// optional suggestion dropdown, then the grouped item lines, then the
// bottom bar. Mouse hit-testing and rendering both walk the same line
// slice so a click at row y always resolves to the line drawn there.

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeader
	lineItem
	lineHint
)

type line struct {
	kind lineKind
	text string
	item model.Item
}

// chrome rows above the dropdown/content area.
const contentTop = 3

func (m *Model) contentStartY() int {
	return contentTop + len(m.filtered)
}

// contentLines flattens the item store into display lines: one section
// per category group, then the bought section.
func contentLines(items []model.Item) []line {
	todo, done := model.Partition(items)

	var out []line
	if len(todo) == 0 {
		out = append(out, line{kind: lineHint, text: "The list is empty."})
	} else {
		for _, g := range model.GroupByCategory(todo) {
			out = append(out, line{kind: lineHeader, text: g.Category})
			for _, it := range g.Items {
				out = append(out, line{kind: lineItem, item: it})
			}
			out = append(out, line{kind: lineBlank})
		}
	}

	out = append(out, line{kind: lineHeader, text: "Bought"})
	if len(done) == 0 {
		out = append(out, line{kind: lineHint, text: "Nothing bought yet."})
	} else {
		for _, it := range done {
			out = append(out, line{kind: lineItem, item: it})
		}
	}
	return out
}

// itemAt resolves a terminal row to the item drawn there.
func (m *Model) itemAt(y int) (model.Item, bool) {
	idx := y - m.contentStartY()
	if idx < 0 {
		return model.Item{}, false
	}
	ls := contentLines(m.eng.Items().Items())
	if idx >= len(ls) || ls[idx].kind != lineItem {
		return model.Item{}, false
	}
	return ls[idx].item, true
}
