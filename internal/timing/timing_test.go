package timing

import (
	"strings"
	"testing"
	"time"
)

func TestTimer_Phases(t *testing.T) {
	timer := NewTimer()

	time.Sleep(10 * time.Millisecond)
	timer.Mark("extract")

	time.Sleep(10 * time.Millisecond)
	timer.Mark("resolve")

	elapsed := timer.Elapsed()
	if elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms, got %v", elapsed)
	}

	// Each mark measures its own phase, not the time since start
	if d, ok := timer.Get("extract"); !ok {
		t.Error("extract not found")
	} else if d < 10*time.Millisecond {
		t.Errorf("extract should be >= 10ms, got %v", d)
	}

	if d, ok := timer.Get("resolve"); !ok {
		t.Error("resolve not found")
	} else if d < 10*time.Millisecond || d >= elapsed {
		t.Errorf("resolve should cover only its phase, got %v of %v", d, elapsed)
	}

	if _, ok := timer.Get("missing"); ok {
		t.Error("missing phase should not be found")
	}
}

func TestTimer_RepeatedMarkAccumulates(t *testing.T) {
	timer := NewTimer()

	time.Sleep(5 * time.Millisecond)
	timer.Mark("io")
	time.Sleep(5 * time.Millisecond)
	timer.Mark("io")

	d, ok := timer.Get("io")
	if !ok {
		t.Fatal("io not found")
	}
	if d < 10*time.Millisecond {
		t.Errorf("io should accumulate both phases, got %v", d)
	}
	if strings.Count(timer.Summary(), "io:") != 1 {
		t.Errorf("Summary should list io once, got: %s", timer.Summary())
	}
}

func TestTimer_Summary(t *testing.T) {
	timer := NewTimer()

	time.Sleep(5 * time.Millisecond)
	timer.Mark("step1")

	time.Sleep(5 * time.Millisecond)
	timer.Mark("step2")

	summary := timer.Summary()

	if !strings.HasPrefix(summary, "Total:") {
		t.Errorf("Summary should start with 'Total:', got: %s", summary)
	}
	if strings.Index(summary, "step1:") > strings.Index(summary, "step2:") {
		t.Errorf("Summary should keep mark order, got: %s", summary)
	}
	if !strings.Contains(summary, "ms") {
		t.Errorf("Summary should contain 'ms', got: %s", summary)
	}
}

func TestTimer_SummaryWithoutMarks(t *testing.T) {
	summary := NewTimer().Summary()
	if strings.Contains(summary, "(") {
		t.Errorf("Summary without marks should have no phase list, got: %s", summary)
	}
}
