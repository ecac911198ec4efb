package services

import "testing"

func TestStatusDefaultsToIdle(t *testing.T) {
	tracker := NewRequestTracker()

	status := tracker.Status("tip:1")
	if status.State != RequestIdle {
		t.Fatalf("untracked key must be idle, got %q", status.State)
	}
}

func TestBeginMarksLoading(t *testing.T) {
	tracker := NewRequestTracker()

	tracker.Begin("tip:1")
	if state := tracker.Status("tip:1").State; state != RequestLoading {
		t.Fatalf("expected loading, got %q", state)
	}
}

func TestCompleteSuccessRecordsResult(t *testing.T) {
	tracker := NewRequestTracker()

	tag := tracker.Begin("tip:1")
	if !tracker.CompleteSuccess("tip:1", tag, "eat more fruit") {
		t.Fatalf("completion with the current tag must be accepted")
	}

	status := tracker.Status("tip:1")
	if status.State != RequestSuccess || status.Result != "eat more fruit" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestStaleCompletionIsDropped(t *testing.T) {
	tracker := NewRequestTracker()

	stale := tracker.Begin("tip:1")
	fresh := tracker.Begin("tip:1")

	if tracker.CompleteSuccess("tip:1", stale, "slow response") {
		t.Fatalf("a superseded request must not record its result")
	}
	if state := tracker.Status("tip:1").State; state != RequestLoading {
		t.Fatalf("stale completion must leave the fresh request loading, got %q", state)
	}

	if !tracker.CompleteSuccess("tip:1", fresh, "fast response") {
		t.Fatalf("the fresh completion must be accepted")
	}
	if result := tracker.Status("tip:1").Result; result != "fast response" {
		t.Fatalf("latest request must win, got %q", result)
	}
}

func TestStaleErrorIsDropped(t *testing.T) {
	tracker := NewRequestTracker()

	stale := tracker.Begin("tip:1")
	fresh := tracker.Begin("tip:1")
	if !tracker.CompleteSuccess("tip:1", fresh, "ok") {
		t.Fatalf("fresh completion rejected")
	}

	if tracker.CompleteError("tip:1", stale, "timed out") {
		t.Fatalf("a stale error must not overwrite a newer success")
	}
	status := tracker.Status("tip:1")
	if status.State != RequestSuccess || status.Error != "" {
		t.Fatalf("unexpected status after stale error: %+v", status)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	tracker := NewRequestTracker()

	tagA := tracker.Begin("tip:1")
	tracker.Begin("tip:2")

	if !tracker.CompleteSuccess("tip:1", tagA, "for user 1") {
		t.Fatalf("completion for an untouched key was rejected")
	}
	if state := tracker.Status("tip:2").State; state != RequestLoading {
		t.Fatalf("key tip:2 must be unaffected, got %q", state)
	}
}
