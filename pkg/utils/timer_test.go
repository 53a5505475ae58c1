package utils

import (
	"testing"
	"time"
)

func TestFrameClockAdvance(t *testing.T) {
	clock := NewFrameClock()
	clock.Advance(0.5)
	clock.Advance(-1) // 负值忽略
	clock.Advance(0.25)

	if got := clock.Now(); got != 750*time.Millisecond {
		t.Errorf("Now() = %v, want 750ms", got)
	}
}

func TestTimerFiresOnceAfterDuration(t *testing.T) {
	clock := NewFrameClock()
	calls := 0
	timer := NewTimer(clock, 500*time.Millisecond, func() { calls++ })

	timer.Start()
	if !timer.Active() {
		t.Fatal("Timer should be active after Start")
	}

	clock.Advance(0.4)
	timer.Update()
	if calls != 0 || !timer.Active() {
		t.Fatalf("Timer fired early: calls=%d active=%v", calls, timer.Active())
	}

	clock.Advance(0.1)
	timer.Update()
	if calls != 1 {
		t.Errorf("Expected exactly one callback, got %d", calls)
	}
	if timer.Active() {
		t.Error("Timer should stop itself after firing")
	}

	// 再次 Update 不应重复触发
	clock.Advance(1)
	timer.Update()
	if calls != 1 {
		t.Errorf("Callback fired again on inactive timer, calls=%d", calls)
	}
}

func TestTimerStartedAtZeroStillFires(t *testing.T) {
	clock := NewFrameClock()
	calls := 0
	timer := NewTimer(clock, 100*time.Millisecond, func() { calls++ })

	// 时钟为 0 时启动也必须正常触发
	timer.Start()
	clock.Advance(0.1)
	timer.Update()

	if calls != 1 {
		t.Errorf("Expected callback for timer started at time zero, got %d", calls)
	}
}

func TestTimerStopDiscardsCallback(t *testing.T) {
	clock := NewFrameClock()
	calls := 0
	timer := NewTimer(clock, 100*time.Millisecond, func() { calls++ })

	timer.Start()
	timer.Stop()
	clock.Advance(1)
	timer.Update()

	if calls != 0 {
		t.Errorf("Stopped timer must not fire, calls=%d", calls)
	}
}

func TestTimerRestartExtendsWindow(t *testing.T) {
	clock := NewFrameClock()
	calls := 0
	timer := NewTimer(clock, 300*time.Millisecond, func() { calls++ })

	timer.Start()
	clock.Advance(0.2)
	timer.Start() // 重新计时
	clock.Advance(0.2)
	timer.Update()
	if calls != 0 {
		t.Fatal("Restarted timer fired before the new window elapsed")
	}

	clock.Advance(0.1)
	timer.Update()
	if calls != 1 {
		t.Errorf("Expected callback after restarted window, got %d", calls)
	}
}

func TestTimerWithoutCallback(t *testing.T) {
	clock := NewFrameClock()
	timer := NewTimer(clock, 200*time.Millisecond, nil)

	timer.Start()
	clock.Advance(0.3)
	timer.Update()

	if timer.Active() {
		t.Error("Cooldown timer should deactivate after its duration")
	}
}

func TestTimerCallbackCanRestart(t *testing.T) {
	clock := NewFrameClock()
	var timer *Timer
	calls := 0
	timer = NewTimer(clock, 100*time.Millisecond, func() {
		calls++
		timer.Start()
	})

	timer.Start()
	clock.Advance(0.1)
	timer.Update()

	if calls != 1 || !timer.Active() {
		t.Errorf("Expected restart inside callback to keep timer active, calls=%d active=%v", calls, timer.Active())
	}
}
