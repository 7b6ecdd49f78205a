package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/tokenbar/tokenbar/internal/core/analytics"
	"github.com/tokenbar/tokenbar/internal/util"
)

// statusRenderer prints one status line per snapshot. On a terminal it
// rewrites the line in place, sized to the current width; piped output gets
// one plain line per cycle.
type statusRenderer struct {
	out        io.Writer
	isTerminal bool
}

func newStatusRenderer(out io.Writer) *statusRenderer {
	isTerminal := false
	if f, ok := out.(*os.File); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return &statusRenderer{out: out, isTerminal: isTerminal}
}

func (r *statusRenderer) Render(snap analytics.UsageSnapshot) {
	line := formatStatusLine(snap)

	if !r.isTerminal {
		fmt.Fprintln(r.out, line)
		return
	}

	width := 80
	if f, ok := r.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	line = runewidth.Truncate(line, width, "…")
	line = runewidth.FillRight(line, width)
	fmt.Fprint(r.out, "\r"+line)
}

// Finish terminates the in-place status line so the shell prompt lands on
// its own row.
func (r *statusRenderer) Finish() {
	if r.isTerminal {
		fmt.Fprintln(r.out)
	}
}

func formatStatusLine(snap analytics.UsageSnapshot) string {
	if !snap.Active {
		return fmt.Sprintf("○ no active session [%s]", snap.Plan.Name)
	}

	parts := []string{
		fmt.Sprintf("● %s / %s tokens",
			util.FormatNumber(snap.Tokens), util.FormatNumber(snap.TokenLimit)),
		util.FormatBurnRate(snap.BurnRate),
		snap.TimeRemaining + " left",
		"resets " + snap.ResetAt,
	}

	if len(snap.Models) > 0 {
		names := make([]string, 0, len(snap.Models))
		for _, m := range snap.Models {
			names = append(names, util.SimplifyModelName(m.Model))
		}
		parts = append(parts, strings.Join(names, "+"))
	}

	return strings.Join(parts, " · ") + fmt.Sprintf(" [%s]", snap.Plan.Name)
}
