package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sofmeright/buildmatrix/src/matrix"
)

// renderer always emits ANSI; callers decide whether to color via UseColor.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var (
	headerStyle = renderer.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	okStyle     = renderer.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = renderer.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle   = renderer.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = renderer.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle   = renderer.NewStyle().Bold(true)
)

func paint(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}

// PlanStatus is "success" for a plan with jobs and no warnings, "failed"
// for one with no jobs at all, and "warning" otherwise.
func PlanStatus(p *matrix.Plan) string {
	switch {
	case len(p.Jobs) == 0:
		return "failed"
	case len(p.Warnings) > 0:
		return "warning"
	default:
		return "success"
	}
}

// PlanSection renders one host's plan as a framed section.
func PlanSection(w io.Writer, p *matrix.Plan, color bool) {
	sec := NewSection(w, fmt.Sprintf("%s on %s", p.Target, p.Host), 0, color)

	modules := "-"
	if len(p.Binaries.ExtraModuleNames) > 0 {
		modules = strings.Join(p.Binaries.ExtraModuleNames, ", ")
	}
	sec.Row("%-12s%s", "modules", paint(boldStyle, modules, color))
	if n := len(p.Binaries.BinaryConfigs); n > 0 {
		sec.Row("%-12s%d", "binaries", n)
	}
	sec.Separator()

	if len(p.Jobs) == 0 {
		sec.Row("%s", Dimmed("no jobs", color))
	}
	for _, j := range p.Jobs {
		sec.Row("%-12s%-10s%-13s%s", j.Kind, j.Platform, j.Configuration, Dimmed(j.Role(), color))
	}

	if p.Skipped > 0 || len(p.Warnings) > 0 {
		sec.Separator()
	}
	if p.Skipped > 0 {
		sec.Row("%s", Dimmed(fmt.Sprintf("%d job(s) filtered out", p.Skipped), color))
	}
	for _, warn := range p.Warnings {
		sec.Row("%s %s", StatusIcon("warning", color), warn)
	}
	sec.Close()
}

// WorstStatus folds PlanStatus across plans: failed beats warning beats success.
func WorstStatus(plans []*matrix.Plan) string {
	worst := "success"
	for _, p := range plans {
		switch PlanStatus(p) {
		case "failed":
			return "failed"
		case "warning":
			worst = "warning"
		}
	}
	return worst
}

// SweepSummary renders one summary row per plan and a total row carrying the
// worst plan status.
func SweepSummary(w io.Writer, plans []*matrix.Plan, elapsed time.Duration, color bool) {
	sec := NewSection(w, "Summary", elapsed, color)
	total := 0
	for _, p := range plans {
		total += len(p.Jobs)
		SummaryRow(w, string(p.Host), PlanStatus(p),
			fmt.Sprintf("%d monolithic, %d formal", len(p.Monolithic()), len(p.Formal())), color)
	}
	sec.Separator()
	SummaryRow(w, "total", WorstStatus(plans), fmt.Sprintf("%d jobs across %d hosts", total, len(plans)), color)
	sec.Close()
}
