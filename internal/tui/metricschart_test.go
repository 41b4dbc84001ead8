package tui

import (
	"math"
	"testing"
	"unicode/utf8"
)

func TestExtractSeriesBareArray(t *testing.T) {
	metrics := map[string]any{
		"loss": []any{1.0, 0.8, 0.5},
	}
	pts := extractSeries(metrics, "loss")
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[2].step != 2 || pts[2].value != 0.5 {
		t.Errorf("unexpected last point: %+v", pts[2])
	}
}

func TestExtractSeriesHistory(t *testing.T) {
	metrics := map[string]any{
		"history": []any{
			map[string]any{"step": 10.0, "loss": 0.9},
			map[string]any{"step": 20.0, "loss": 0.7},
			map[string]any{"step": 30.0, "accuracy": 0.5}, // no loss at this step
		},
	}
	pts := extractSeries(metrics, "loss")
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[1].step != 20 || pts[1].value != 0.7 {
		t.Errorf("unexpected point: %+v", pts[1])
	}
}

func TestExtractSeriesNilMetrics(t *testing.T) {
	if pts := extractSeries(nil, "loss"); pts != nil {
		t.Errorf("expected nil, got %v", pts)
	}
}

func TestMergeByStepsAlignsRuns(t *testing.T) {
	series := map[string][]metricPoint{
		"a": {{step: 0, value: 1.0}, {step: 10, value: 0.5}},
		"b": {{step: 0, value: 1.2}, {step: 5, value: 0.9}, {step: 10, value: 0.4}},
	}
	steps, table := mergeBySteps(series)

	if len(steps) != 3 {
		t.Fatalf("expected 3 merged steps, got %d", len(steps))
	}
	if steps[0] != 0 || steps[1] != 5 || steps[2] != 10 {
		t.Errorf("unexpected step axis: %v", steps)
	}

	a := table["a"]
	if !math.IsNaN(a[1]) {
		t.Errorf("run a has no value at step 5, expected NaN, got %v", a[1])
	}
	if a[0] != 1.0 || a[2] != 0.5 {
		t.Errorf("run a misaligned: %v", a)
	}

	b := table["b"]
	if b[0] != 1.2 || b[1] != 0.9 || b[2] != 0.4 {
		t.Errorf("run b misaligned: %v", b)
	}
}

func TestMergeByStepsEmpty(t *testing.T) {
	steps, table := mergeBySteps(map[string][]metricPoint{})
	if steps != nil || table != nil {
		t.Error("expected nil results for empty input")
	}
}

func TestSparklineWidth(t *testing.T) {
	s := sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	if utf8.RuneCountInString(s) != 4 {
		t.Errorf("expected 4 runes, got %d (%q)", utf8.RuneCountInString(s), s)
	}
}

func TestSparklineRange(t *testing.T) {
	s := []rune(sparkline([]float64{0, 1}, 2))
	if s[0] != '▁' {
		t.Errorf("minimum should render the lowest block, got %q", s[0])
	}
	if s[1] != '█' {
		t.Errorf("maximum should render the highest block, got %q", s[1])
	}
}

func TestSparklineAllNaN(t *testing.T) {
	s := sparkline([]float64{math.NaN(), math.NaN()}, 2)
	if s != "  " {
		t.Errorf("expected blanks for NaN-only input, got %q", s)
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	s := []rune(sparkline([]float64{2, 2, 2}, 3))
	for _, r := range s {
		if r != '▁' {
			t.Errorf("flat series should render the lowest block, got %q", string(s))
			break
		}
	}
}
