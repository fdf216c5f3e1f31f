package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/core"
)

// solidRune marks a cell painted entirely with its color.
const solidRune = '█'

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
}

// Text cells are drawn in their color; solid cells paint the background so
// neighbouring rows join without the gaps a block glyph leaves.
var textStyles, solidStyles = buildStyles()

func buildStyles() (text, solid map[core.Color]lipgloss.Style) {
	text = map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	solid = map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		text[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		solid[c] = lipgloss.NewStyle().Background(lipgloss.Color(code))
	}
	return text, solid
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and kind to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			solid := first.Rune == solidRune && first.Color != core.ColorDefault

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				cellSolid := cell.Rune == solidRune && cell.Color != core.ColorDefault
				if cell.Color != first.Color || cellSolid != solid {
					break
				}
				if solid {
					run.WriteRune(' ')
				} else {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			styles := textStyles
			if solid {
				styles = solidStyles
			}
			style, ok := styles[first.Color]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
