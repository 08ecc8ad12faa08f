package commands

import (
	"fmt"
	"strings"

	"github.com/jakechorley/shift-planner/pkg/core/scheduler"
	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// coverageColor picks green for a fully staffed shift, yellow for partial and red for empty
func coverageColor(assigned, required int) string {
	switch {
	case assigned >= required:
		return colorGreen
	case assigned > 0:
		return colorYellow
	default:
		return colorRed
	}
}

// shiftCell renders a shift's names, or a dash when nobody is assigned
func shiftCell(entries []services.ScheduleEntry) string {
	if len(entries) == 0 {
		return "—"
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.EmployeeName
	}
	return strings.Join(names, ", ")
}

// printScheduleGrid prints one line per date with a column per shift type
func printScheduleGrid(view *services.ScheduleView) {
	const dateWidth = 12
	const colWidth = 28

	fmt.Printf("%-*s", dateWidth, "Date")
	for _, label := range view.ShiftLabels {
		fmt.Printf("  %-*s", colWidth, label)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", dateWidth+len(view.ShiftLabels)*(colWidth+2)))

	for _, day := range view.Days {
		fmt.Printf("%-*s", dateWidth, day.Date)
		for i, entries := range day.Shifts {
			color := coverageColor(len(entries), view.ShiftTypes[i].RequiredCount)
			fmt.Printf("  %s%-*s%s", color, colWidth, truncate(shiftCell(entries), colWidth), colorReset)
		}
		fmt.Println()
	}
}

// printStats prints per-employee totals and the closing spread
func printStats(stats []services.EmployeeStats, minClosing, maxClosing int) {
	fmt.Printf("%-24s  %6s  %8s\n", "Employee", "Shifts", "Closing")
	fmt.Println("------------------------  ------  --------")
	for _, s := range stats {
		color := ""
		if s.Total == 0 {
			color = colorDim
		}
		fmt.Printf("%s%-24s  %6d  %8d%s\n", color, truncate(s.Name, 24), s.Total, s.Closing, colorReset)
	}
	fmt.Printf("\nClosing shifts per employee: min %d, max %d\n", minClosing, maxClosing)
}

// printUnderstaffed lists shifts that were not fully staffed
func printUnderstaffed(understaffed []scheduler.UnderstaffedOccurrence, labels map[string]string) {
	if len(understaffed) == 0 {
		fmt.Printf("%s✓ Every shift is fully staffed%s\n", colorGreen, colorReset)
		return
	}

	fmt.Printf("%s⚠ %d understaffed shifts:%s\n", colorYellow, len(understaffed), colorReset)
	for _, u := range understaffed {
		label, ok := labels[u.ShiftTypeID]
		if !ok {
			label = u.ShiftTypeID
		}
		fmt.Printf("  %s  %-20s  %d/%d\n", u.Date, label, u.Assigned, u.Required)
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func optional(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
