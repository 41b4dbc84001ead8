package logstream

import (
	"fmt"
	"strings"

	"github.com/hinshun/vt10x"
)

// vt10x keeps its attribute bits unexported.
const (
	attrReverse   = 1
	attrUnderline = 2
	attrBold      = 4
	attrItalic    = 16
)

// cellStyle is the display state of one cell, used to batch SGR emissions.
type cellStyle struct {
	fg        vt10x.Color
	bg        vt10x.Color
	bold      bool
	italic    bool
	underline bool
	reverse   bool
}

var defaultStyle = cellStyle{fg: vt10x.DefaultFG, bg: vt10x.DefaultBG}

func styleOf(g vt10x.Glyph) cellStyle {
	return cellStyle{
		fg:        g.FG,
		bg:        g.BG,
		bold:      g.Mode&attrBold != 0,
		italic:    g.Mode&attrItalic != 0,
		underline: g.Mode&attrUnderline != 0,
		reverse:   g.Mode&attrReverse != 0,
	}
}

func (s cellStyle) sgr(sb *strings.Builder) {
	sb.WriteString("\033[0")
	if s.bold {
		sb.WriteString(";1")
	}
	if s.italic {
		sb.WriteString(";3")
	}
	if s.underline {
		sb.WriteString(";4")
	}
	if s.reverse {
		sb.WriteString(";7")
	}
	if s.fg != vt10x.DefaultFG {
		sgrColor(sb, s.fg, true)
	}
	if s.bg != vt10x.DefaultBG {
		sgrColor(sb, s.bg, false)
	}
	sb.WriteByte('m')
}

// renderScreen walks the emulated cell grid and emits SGR-colored text, one
// line per terminal row. Trailing default-style spaces are trimmed so lines
// fit the viewport.
func renderScreen(vt vt10x.Terminal, rows, cols int) string {
	var sb strings.Builder
	sb.Grow(cols * rows * 3)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		lastCol := cols - 1
		for lastCol >= 0 {
			g := vt.Cell(lastCol, row)
			ch := g.Char
			if ch == 0 {
				ch = ' '
			}
			if ch != ' ' || styleOf(g) != defaultStyle {
				break
			}
			lastCol--
		}

		current := defaultStyle
		styled := false
		for col := 0; col <= lastCol; col++ {
			g := vt.Cell(col, row)
			ch := g.Char
			if ch == 0 {
				ch = ' '
			}
			if style := styleOf(g); style != current {
				style.sgr(&sb)
				current = style
				styled = true
			}
			sb.WriteRune(ch)
		}
		if styled {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

// sgrColor appends the SGR parameter for a vt10x color. Sentinel colors
// (bit 24 set) mean "terminal default" and emit nothing.
func sgrColor(sb *strings.Builder, c vt10x.Color, isFG bool) {
	idx := uint32(c)
	if idx >= 1<<24 {
		return
	}
	switch {
	case idx < 8:
		if isFG {
			fmt.Fprintf(sb, ";%d", 30+idx)
		} else {
			fmt.Fprintf(sb, ";%d", 40+idx)
		}
	case idx < 16:
		if isFG {
			fmt.Fprintf(sb, ";%d", 90+idx-8)
		} else {
			fmt.Fprintf(sb, ";%d", 100+idx-8)
		}
	case idx < 256:
		if isFG {
			fmt.Fprintf(sb, ";38;5;%d", idx)
		} else {
			fmt.Fprintf(sb, ";48;5;%d", idx)
		}
	default:
		// 24-bit RGB packed as r<<16 | g<<8 | b.
		r := (idx >> 16) & 0xFF
		g := (idx >> 8) & 0xFF
		b := idx & 0xFF
		if isFG {
			fmt.Fprintf(sb, ";38;2;%d;%d;%d", r, g, b)
		} else {
			fmt.Fprintf(sb, ";48;2;%d;%d;%d", r, g, b)
		}
	}
}
