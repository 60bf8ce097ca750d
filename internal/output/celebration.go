package output

import (
	"fmt"
	"io"
	"time"
)

// printCelebration shows a sparkle animation when every proposal in a batch is
// exceptional. Only used when writing to a terminal.
func printCelebration(w io.Writer, msg string) {
	frames := []struct {
		text  string
		delay time.Duration
	}{
		{greenStyle.Render(msg), 200 * time.Millisecond},
		{yellowStyle.Bold(true).Render("✨ " + msg + " ✨"), 300 * time.Millisecond},
		{greenStyle.Bold(true).Render("🏛 " + msg + " 🏛"), 400 * time.Millisecond},
		{yellowStyle.Bold(true).Render("✨ " + msg + " ✨"), 300 * time.Millisecond},
		{greenStyle.Render(msg), 0},
	}

	for i, frame := range frames {
		if i > 0 {
			fmt.Fprint(w, "\r\033[K")
		}
		fmt.Fprint(w, frame.text)
		if frame.delay > 0 {
			time.Sleep(frame.delay)
		}
	}
	fmt.Fprintln(w)
}
