package systems

import "testing"

func TestScheduler_FiresOnceAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Schedule("a", 1.0, func() { fired++ })

	s.Tick(0.5)
	if fired != 0 {
		t.Error("action fired before delay elapsed")
	}
	if !s.Pending("a") {
		t.Error("action should still be pending")
	}

	s.Tick(0.6)
	if fired != 1 {
		t.Errorf("expected 1 firing, got %d", fired)
	}
	if s.Pending("a") {
		t.Error("fired action should be removed")
	}

	s.Tick(2.0)
	if fired != 1 {
		t.Errorf("one-shot action fired again, total %d", fired)
	}
}

func TestScheduler_ReplaceResetsTimerKeepsAction(t *testing.T) {
	s := NewScheduler()
	firstFired := false
	secondFired := false

	s.Schedule("boost", 1.0, func() { firstFired = true })
	s.Tick(0.8)

	// Re-trigger: timer resets, original action survives
	s.Schedule("boost", 1.0, func() { secondFired = true })
	s.Tick(0.8)
	if firstFired || secondFired {
		t.Error("nothing should have fired yet after timer reset")
	}

	s.Tick(0.3)
	if !firstFired {
		t.Error("original action should fire after the reset timer elapses")
	}
	if secondFired {
		t.Error("replacement action should never fire")
	}
}

func TestScheduler_IndependentKeys(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Schedule("fast", 0.5, func() { order = append(order, "fast") })
	s.Schedule("slow", 2.0, func() { order = append(order, "slow") })

	s.Tick(1.0)
	s.Tick(1.5)

	if len(order) != 2 || order[0] != "fast" || order[1] != "slow" {
		t.Errorf("unexpected firing order: %v", order)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty scheduler, %d pending", s.Len())
	}
}

func TestScheduler_ActionMayReschedule(t *testing.T) {
	s := NewScheduler()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			s.Schedule("cycle", 1.0, again)
		}
	}
	s.Schedule("cycle", 1.0, again)

	for i := 0; i < 5; i++ {
		s.Tick(1.0)
	}
	if count != 3 {
		t.Errorf("expected 3 firings, got %d", count)
	}
}
