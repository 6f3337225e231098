package tui

import "testing"

func TestProgressDisplay_StepLifecycle(t *testing.T) {
	p := NewProgressDisplay(true)

	p.BeginStep("Downloading model")
	p.UpdateBytes(512, 1024)
	p.BeginStep("Extracting model")

	if p.StepCount() != 2 {
		t.Fatalf("StepCount() = %d, want 2", p.StepCount())
	}
	if p.steps[0].Status != StepComplete {
		t.Error("previous step not completed when a new one begins")
	}
	if p.steps[1].Status != StepRunning {
		t.Error("new step not running")
	}

	p.Finish()
	if p.steps[1].Status != StepComplete {
		t.Error("Finish() did not complete the running step")
	}
}

func TestProgressDisplay_Fail(t *testing.T) {
	p := NewProgressDisplay(true)

	p.BeginStep("Downloading model")
	p.Fail("HTTP 404")

	if p.steps[0].Status != StepError {
		t.Error("Fail() did not mark the step failed")
	}
	if p.steps[0].Error != "HTTP 404" {
		t.Errorf("step error = %q", p.steps[0].Error)
	}
}

func TestProgressDisplay_UpdateWithoutSteps(t *testing.T) {
	p := NewProgressDisplay(true)

	// Must not panic with no announced step
	p.UpdateBytes(10, 100)
	p.Fail("boom")
	p.Finish()

	if p.StepCount() != 0 {
		t.Errorf("StepCount() = %d, want 0", p.StepCount())
	}
}
