package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/text2song/studio/internal/api"
)

// sparkChars are the eight block levels used for sparkline rendering.
var sparkChars = []rune("▁▂▃▄▅▆▇█")

// metricPoint is one sample of a per-run metric series.
type metricPoint struct {
	step  float64
	value float64
}

// MetricsChart plots per-run loss curves as sparklines in the right panel.
type MetricsChart struct {
	runs   []api.ExperimentRun
	series map[string][]metricPoint // keyed by run ID
	width  int
	height int
}

// NewMetricsChart creates a new metrics chart.
func NewMetricsChart() *MetricsChart {
	return &MetricsChart{series: map[string][]metricPoint{}}
}

// SetRuns replaces the charted runs and re-extracts their series.
func (mc *MetricsChart) SetRuns(runs []api.ExperimentRun) {
	mc.runs = runs
	mc.series = map[string][]metricPoint{}
	for _, r := range runs {
		if pts := extractSeries(r.Metrics, "loss"); len(pts) > 0 {
			mc.series[r.ID] = pts
		}
	}
}

// SetSize updates dimensions.
func (mc *MetricsChart) SetSize(width, height int) {
	mc.width = width
	mc.height = height
}

// View renders one sparkline row per run, best final loss highlighted.
func (mc *MetricsChart) View() string {
	if len(mc.runs) == 0 {
		return emptyStateStyle.
			Width(mc.width).
			Align(lipgloss.Center).
			Render("\nNo runs selected. Pick an experiment to chart its runs.")
	}

	steps, table := mergeBySteps(mc.series)
	if len(steps) == 0 {
		return emptyStateStyle.
			Width(mc.width).
			Align(lipgloss.Center).
			Render("\nNo metric series reported yet.")
	}

	bestID := mc.bestRunID()
	sparkWidth := mc.width - 26
	if sparkWidth < 10 {
		sparkWidth = 10
	}

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render(fmt.Sprintf("loss by step (%d steps)", len(steps))), "")

	for _, r := range mc.runs {
		values, ok := table[r.ID]
		if !ok {
			continue
		}

		name := r.ID
		if len(name) > 8 {
			name = name[:8]
		}
		if r.Name != nil && *r.Name != "" {
			name = *r.Name
		}

		spark := chartLineStyle.Render(sparkline(values, sparkWidth))
		tail := ""
		if r.FinalLoss != nil {
			tail = fmt.Sprintf(" %.4f", *r.FinalLoss)
		}

		label := chartLabelStyle.Render(name)
		if r.ID == bestID {
			label = chartBestStyle.Render(name + " ★")
			tail = chartBestStyle.Render(tail)
		}
		lines = append(lines, label+spark+tail)
	}

	return strings.Join(lines, "\n")
}

// bestRunID returns the run with the lowest final loss, or "".
func (mc *MetricsChart) bestRunID() string {
	best := ""
	bestLoss := math.Inf(1)
	for _, r := range mc.runs {
		if r.FinalLoss != nil && *r.FinalLoss < bestLoss {
			bestLoss = *r.FinalLoss
			best = r.ID
		}
	}
	return best
}

// extractSeries pulls a numeric series out of a run's metrics map. Two
// shapes are accepted: a bare array under the metric key, and a history
// array of {step, <key>} objects.
func extractSeries(metrics map[string]any, key string) []metricPoint {
	if metrics == nil {
		return nil
	}

	if raw, ok := metrics[key].([]any); ok {
		var pts []metricPoint
		for i, v := range raw {
			if f, ok := toFloat(v); ok {
				pts = append(pts, metricPoint{step: float64(i), value: f})
			}
		}
		return pts
	}

	if history, ok := metrics["history"].([]any); ok {
		var pts []metricPoint
		for i, entry := range history {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			value, ok := toFloat(m[key])
			if !ok {
				continue
			}
			step := float64(i)
			if s, ok := toFloat(m["step"]); ok {
				step = s
			}
			pts = append(pts, metricPoint{step: step, value: value})
		}
		return pts
	}

	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// mergeBySteps aligns per-run series on a shared sorted step axis. Runs
// missing a step carry NaN there so sparklines stay comparable.
func mergeBySteps(series map[string][]metricPoint) ([]float64, map[string][]float64) {
	stepSet := map[float64]bool{}
	for _, pts := range series {
		for _, p := range pts {
			stepSet[p.step] = true
		}
	}
	if len(stepSet) == 0 {
		return nil, nil
	}

	steps := make([]float64, 0, len(stepSet))
	for s := range stepSet {
		steps = append(steps, s)
	}
	sort.Float64s(steps)

	index := make(map[float64]int, len(steps))
	for i, s := range steps {
		index[s] = i
	}

	table := make(map[string][]float64, len(series))
	for id, pts := range series {
		row := make([]float64, len(steps))
		for i := range row {
			row[i] = math.NaN()
		}
		for _, p := range pts {
			row[index[p.step]] = p.value
		}
		table[id] = row
	}
	return steps, table
}

// sparkline renders values as a fixed-width row of block characters.
// NaN values render as spaces.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width < 1 {
		return ""
	}

	// Downsample or stretch onto the target width.
	sampled := make([]float64, width)
	for i := range sampled {
		idx := i * len(values) / width
		sampled[i] = values[idx]
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range sampled {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if math.IsInf(lo, 1) {
		return strings.Repeat(" ", width)
	}

	var sb strings.Builder
	for _, v := range sampled {
		if math.IsNaN(v) {
			sb.WriteRune(' ')
			continue
		}
		level := 0
		if hi > lo {
			level = int((v - lo) / (hi - lo) * float64(len(sparkChars)-1))
		}
		sb.WriteRune(sparkChars[level])
	}
	return sb.String()
}
