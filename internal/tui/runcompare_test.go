package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/text2song/studio/internal/api"
)

func runWithLoss(id, name string, loss float64) api.ExperimentRun {
	return api.ExperimentRun{
		ID:        id,
		Name:      &name,
		Status:    api.RunCompleted,
		FinalLoss: &loss,
	}
}

func TestBuildComparisonEmpty(t *testing.T) {
	rows, summary := buildComparison(nil)
	if rows != nil {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if summary != nil {
		t.Error("expected no summary for zero runs")
	}
}

func TestBuildComparisonSingleRunHasNoSummary(t *testing.T) {
	rows, summary := buildComparison([]api.ExperimentRun{
		runWithLoss("r1", "baseline", 0.5),
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Best {
		t.Error("single run with a loss should be marked best")
	}
	if summary != nil {
		t.Error("a single run has nothing to compare against")
	}
}

func TestBuildComparisonTwoRuns(t *testing.T) {
	rows, summary := buildComparison([]api.ExperimentRun{
		runWithLoss("r1", "baseline", 0.8),
		runWithLoss("r2", "tuned", 0.4),
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "tuned" || !rows[0].Best {
		t.Errorf("expected tuned first and best, got %+v", rows[0])
	}
	if summary == nil {
		t.Fatal("expected a summary for two runs")
	}
	if summary.BestName != "tuned" || summary.WorstName != "baseline" {
		t.Errorf("unexpected summary names: %+v", summary)
	}
	// (0.8 - 0.4) / 0.8 = 50%
	if math.Abs(summary.GapPercent-50) > 0.01 {
		t.Errorf("expected 50%% gap, got %.2f", summary.GapPercent)
	}
}

func TestBuildComparisonMissingLossesSortLast(t *testing.T) {
	pending := api.ExperimentRun{ID: "r3", Status: api.RunRunning}
	rows, summary := buildComparison([]api.ExperimentRun{
		pending,
		runWithLoss("r1", "a", 0.6),
		runWithLoss("r2", "b", 0.3),
	})
	if rows[len(rows)-1].Loss != nil {
		t.Error("run without a loss should sort last")
	}
	if summary == nil {
		t.Fatal("two runs with losses should still produce a summary")
	}
	if summary.WorstName != "a" {
		t.Errorf("worst should be the highest reported loss, got %s", summary.WorstName)
	}
}

func TestRenderRunCompareEmptyState(t *testing.T) {
	out := renderRunCompare(nil, 100)
	if !strings.Contains(out, "No runs marked") {
		t.Errorf("expected empty-state message, got %q", out)
	}
	if strings.Contains(out, "Summary") {
		t.Error("empty comparison must not render a summary")
	}
}

func TestRenderRunCompareSummaryOnlyForMultipleRuns(t *testing.T) {
	one := renderRunCompare([]api.ExperimentRun{
		runWithLoss("r1", "solo", 0.5),
	}, 100)
	if strings.Contains(one, "Summary") {
		t.Error("one run must not render a summary")
	}

	two := renderRunCompare([]api.ExperimentRun{
		runWithLoss("r1", "a", 0.8),
		runWithLoss("r2", "b", 0.4),
	}, 100)
	if !strings.Contains(two, "Summary") {
		t.Error("two runs should render a summary")
	}
}
