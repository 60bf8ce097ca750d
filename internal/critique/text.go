package critique

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// joinList renders "A", "A AND B" or "A, B AND C".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " AND " + items[len(items)-1]
}

func upperAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToUpper(s)
	}
	return out
}

const boxWidth = 78

// boxed frames lines in a double-line box, each line centred.
func boxed(lines ...string) string {
	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", boxWidth) + "╗\n")
	for _, line := range lines {
		b.WriteString("║" + lipgloss.PlaceHorizontal(boxWidth, lipgloss.Center, line) + "║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", boxWidth) + "╝\n")
	return b.String()
}
