package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ToolbarItem is one button of the toolbar row.
type ToolbarItem struct {
	Label   string
	Enabled bool
}

// DrawToolbar fills row y with the toolbar: items from the left, disabled
// ones dimmed, and info right-aligned when it fits.
func DrawToolbar(screen tcell.Screen, y, width int, items []ToolbarItem, info string, style tcell.Style) {
	if width <= 0 {
		return
	}
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	x := 1
	for _, item := range items {
		itemStyle := style
		if !item.Enabled {
			itemStyle = style.Dim(true)
		}
		label := "[" + item.Label + "]"
		if x+uniseg.StringWidth(label) > width {
			return
		}
		x += drawString(screen, x, y, width-x, label, itemStyle) + 1
	}

	infoWidth := uniseg.StringWidth(info)
	if start := width - infoWidth - 1; info != "" && start > x {
		drawString(screen, start, y, infoWidth, info, style.Bold(true))
	}
}
