package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/engine/history"
)

const help = "1-4 effects  p power  t theme  ←→ hue  ↑↓ lightness  [ ] presets  j/k Enter time travel  u/r undo/redo  c clear  q quit"

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleOn      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleOff     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor  = tcell.StyleDefault.Reverse(true)
)

// Draw renders the current state.
func (u *UI) Draw() {
	u.screen.Clear()
	s := u.editor.State()
	_, height := u.screen.Size()

	power := "off"
	if s.PowerOn {
		power = "on"
	}
	x := u.text(0, 0, styleTitle, "softglow")
	x = u.text(x+2, 0, styleDefault, "power "+power)
	u.text(x+2, 0, styleDefault, "theme "+string(s.ThemeMode))

	x = 0
	for i, t := range effect.Types {
		style, mark := styleOff, "○"
		if s.ActiveEffects.Get(t) {
			style, mark = styleOn, "●"
		}
		x = u.text(x, 1, style, fmt.Sprintf("[%d] %s %s", i+1, t.Title(), mark)) + 2
	}

	x = u.text(0, 3, styleDefault, "glow   ")
	x = u.swatch(x, 3, effect.GlowHex(s.Glow))
	u.text(x+1, 3, styleDefault, fmt.Sprintf("%s  base %s", effect.GlowColor(s.Glow), s.Glow.BaseColor))

	sh := effect.NeomorphShadow(s.Neomorph)
	x = u.text(0, 4, styleDefault, "shadow ")
	for _, c := range []string{sh.Light, sh.Surface, sh.Dark} {
		x = u.swatch(x, 4, c) + 1
	}
	u.text(x, 4, styleDim, fmt.Sprintf("%s light %d,%d dark %d,%d", s.Neomorph.Shape, sh.LightX, sh.LightY, sh.DarkX, sh.DarkY))

	if name := u.presetName(); name != "" {
		u.text(0, 5, styleDefault, "preset "+name)
	}

	u.drawTimeline(7, height-2)

	u.text(0, height-2, styleDim, help)
	u.text(0, height-1, styleDefault, u.status)
	u.screen.Show()
}

func (u *UI) presetName() string {
	if u.catalog == nil || u.presetIdx < 0 {
		return ""
	}
	all := u.catalog.All()
	if u.presetIdx >= len(all) {
		return ""
	}
	return all[u.presetIdx].Name
}

// drawTimeline draws the history panel between rows top and bottom.
func (u *UI) drawTimeline(top, bottom int) {
	h := u.editor.History()
	st := history.StatsOf(h)
	u.text(0, top, styleTitle, fmt.Sprintf("history  %d undo  %d redo", st.PastCount, st.FutureCount))

	rows := timeline(h)
	if u.selected >= len(rows) {
		u.selected = max(0, len(rows)-1)
	}

	// Keep the selection visible.
	visible := bottom - top - 1
	first := 0
	if visible > 0 && u.selected >= visible {
		first = u.selected - visible + 1
	}

	y := top + 1
	for i := first; i < len(rows) && y < bottom; i++ {
		row := rows[i]
		marker := "↶"
		style := styleDefault
		if row.future {
			marker = "↷"
			style = styleDim
		}
		if i == u.selected {
			style = styleCursor
		}
		line := fmt.Sprintf("%s %s  %s", marker, row.entry.Timestamp.Format("15:04:05"), row.entry.Label)
		u.text(2, y, style, line)
		y++
	}
}

// text draws s at (x, y) and returns the column after it.
func (u *UI) text(x, y int, style tcell.Style, s string) int {
	width, _ := u.screen.Size()
	for _, r := range s {
		if x >= width {
			break
		}
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// swatch draws a two cell block of the hex color and returns the column after it.
func (u *UI) swatch(x, y int, hex string) int {
	style := styleDefault
	if c, err := colorful.Hex(hex); err == nil {
		r, g, b := c.RGB255()
		style = style.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return u.text(x, y, style, strings.Repeat(" ", 2))
}
