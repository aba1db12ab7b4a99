package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles used for the command line output.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	ValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// FormatTime formats time.Duration output to a human readable value.
// Durations below a minute keep two decimals, since most pictures
// are generated in well under a second.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(remainingSeconds))
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh:%dm:%ds",
		int64(d.Hours()), int64(remainingMinutes), int64(remainingSeconds))
}

// FormatCount formats an integer with thousands separators, e.g. 59049 as "59,049".
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
