package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`            _             _            _      `, "#fde68a"},
		{` _ __ ___  (_)_ __  _   _| |_ ___ _ __(_) ___ `, "#fcd34d"},
		{`| '_ ' _ \ | | '_ \| | | | __/ _ \ '__| |/ _ \`, "#fbbf24"},
		{`| | | | | || | | | | |_| | ||  __/ |  | |  __/`, "#f59e0b"},
		{`|_| |_| |_||_|_| |_|\__,_|\__\___|_|  |_|\___|`, "#d97706"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  timed light controller v"+version).Faint())
	fmt.Fprintln(w)
}
