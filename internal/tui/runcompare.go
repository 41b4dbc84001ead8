package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// comparisonRow is one run's line in the comparison table.
type comparisonRow struct {
	Name   string
	Status api.RunStatus
	Loss   *float64
	Best   bool
}

// comparisonSummary is the best/worst gap shown for two or more runs.
type comparisonSummary struct {
	BestName   string
	WorstName  string
	GapPercent float64
}

// buildComparison sorts runs by final loss (missing losses last) and
// marks the best. The summary is only produced for two or more runs
// with reported losses; a single run has nothing to compare against.
func buildComparison(runs []api.ExperimentRun) ([]comparisonRow, *comparisonSummary) {
	if len(runs) == 0 {
		return nil, nil
	}

	rows := make([]comparisonRow, 0, len(runs))
	for _, r := range runs {
		name := r.ID
		if len(name) > 8 {
			name = name[:8]
		}
		if r.Name != nil && *r.Name != "" {
			name = *r.Name
		}
		rows = append(rows, comparisonRow{Name: name, Status: r.Status, Loss: r.FinalLoss})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		li, lj := rows[i].Loss, rows[j].Loss
		if li == nil {
			return false
		}
		if lj == nil {
			return true
		}
		return *li < *lj
	})

	var withLoss []int
	for i, row := range rows {
		if row.Loss != nil {
			withLoss = append(withLoss, i)
		}
	}
	if len(withLoss) > 0 {
		rows[withLoss[0]].Best = true
	}

	if len(rows) < 2 || len(withLoss) < 2 {
		return rows, nil
	}

	best := rows[withLoss[0]]
	worst := rows[withLoss[len(withLoss)-1]]
	gap := 0.0
	if *worst.Loss != 0 {
		gap = math.Abs(*worst.Loss-*best.Loss) / math.Abs(*worst.Loss) * 100
	}
	return rows, &comparisonSummary{
		BestName:   best.Name,
		WorstName:  worst.Name,
		GapPercent: gap,
	}
}

// renderRunCompare renders the run comparison overlay.
func renderRunCompare(runs []api.ExperimentRun, width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	rows, summary := buildComparison(runs)

	parts := []string{overlayTitleStyle.Render("Run Comparison")}

	if len(rows) == 0 {
		parts = append(parts, emptyStateStyle.Render("No runs marked. Press 'c' on runs to compare them."))
		parts = append(parts, "", emptyStateStyle.Render("Esc to close"))
		return overlayStyle.Width(maxWidth).Render(strings.Join(parts, "\n"))
	}

	for _, row := range rows {
		loss := emptyStateStyle.Render("no loss reported")
		if row.Loss != nil {
			loss = fmt.Sprintf("loss %.4f", *row.Loss)
		}

		name := lipgloss.NewStyle().Bold(true).Width(18).Render(row.Name)
		line := fmt.Sprintf("%s %-10s %s", name, row.Status, loss)
		if row.Best {
			line = chartBestStyle.Render(line + "  ★ best")
		}
		parts = append(parts, line)
	}

	if summary != nil {
		parts = append(parts, "", sectionHeaderStyle.Render("Summary"))
		parts = append(parts, fmt.Sprintf("%s beats %s by %.1f%%",
			chartBestStyle.Render(summary.BestName),
			itemFailedStyle.Render(summary.WorstName),
			summary.GapPercent))
	}

	parts = append(parts, "", emptyStateStyle.Render("Esc to close"))
	return overlayStyle.Width(maxWidth).Render(strings.Join(parts, "\n"))
}
