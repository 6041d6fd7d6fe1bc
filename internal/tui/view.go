package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.width

	var b strings.Builder
	b.WriteString(m.titleLine(w))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.noticeLine())
	b.WriteByte('\n')

	for i, s := range m.filtered {
		row := "  " + s
		if i == m.dropSel {
			row = selectedStyle.Render(row)
		} else {
			row = accentStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	switch {
	case m.fatalErr != nil:
		b.WriteString(errorStyle.Render("Couldn't load the list: " + m.fatalErr.Error()))
		b.WriteByte('\n')
	case m.loading:
		b.WriteString(m.spin.View() + " loading...")
		b.WriteByte('\n')
	case m.mode == modeShare:
		b.WriteString(m.shareBox())
		b.WriteByte('\n')
	default:
		for _, l := range contentLines(m.eng.Items().Items()) {
			b.WriteString(m.renderLine(l, w))
			b.WriteByte('\n')
		}
	}

	body := clipHeight(b.String(), m.height-1)
	return body + "\n" + m.bottomLine()
}

func (m Model) titleLine(w int) string {
	left := titleStyle.Render("Handla") + "  " + accentStyle.Render(m.active.Name)
	right := mutedStyle.Render(m.user)
	pad := w - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) noticeLine() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeErr {
		return errorStyle.Render(m.notice)
	}
	return noticeStyle.Render(m.notice)
}

func (m Model) shareBox() string {
	body := fmt.Sprintf("Share %q\n\n%s\n\n%s", m.active.Name, m.ti.View(),
		helpStyle.Render("enter invite · esc cancel"))
	return modalStyle.Render(body)
}

func (m Model) renderLine(l line, w int) string {
	switch l.kind {
	case lineBlank:
		return ""
	case lineHeader:
		return headerStyle.Render(l.text)
	case lineHint:
		return mutedStyle.Render(l.text)
	}

	it := l.item
	if m.mode == modeEdit && it.ID == m.editing {
		return "✎ " + m.ti.View()
	}

	box := boxUnchecked
	glyph := "✎"
	if it.Done {
		box = boxChecked
		glyph = "✖"
	}
	body := box + " " + it.Name
	pad := w - runeLen(body) - 2
	if pad < 1 {
		pad = 1
	}
	plain := body + strings.Repeat(" ", pad) + glyph

	// Swiped rows slide left, revealing the delete zone on the right.
	shift := -m.tracker.Offset(it.ID) / cellPxX
	if shift > 0 {
		r := []rune(plain)
		if shift > len(r) {
			shift = len(r)
		}
		plain = string(r[shift:])
		reveal := revealStyle.Render(clipRunes(" ✖ delete", shift))
		if it.Done {
			return doneStyle.Render(plain) + reveal
		}
		return plain + reveal
	}
	if it.Done {
		return doneStyle.Render(plain)
	}
	return plain
}

func (m Model) bottomLine() string {
	if m.toast != "" {
		return noticeStyle.Render("↩ "+m.toast) + "  " + accentStyle.Render("[ Undo: ctrl+z ]")
	}
	return helpStyle.Render("enter add · ctrl+z undo · ctrl+s share · ctrl+l lists · esc quit")
}

func runeLen(s string) int { return len([]rune(s)) }

// clipRunes pads or truncates s to exactly n cells.
func clipRunes(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}

func clipHeight(s string, h int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
