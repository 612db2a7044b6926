package animation

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestPlayer_RejectsOverlappingStart(t *testing.T) {
	p := NewPlayerWithDuration(zap.NewNop(), 500*time.Millisecond)

	if !p.Start() {
		t.Fatalf("first start must succeed")
	}
	if p.Start() {
		t.Fatalf("second start during animation must be rejected")
	}

	p.Stop()
	waitUntil(t, time.Second, func() bool { return !p.IsAnimating() })
}

func TestPlayer_CompletesAfterDuration(t *testing.T) {
	p := NewPlayerWithDuration(zap.NewNop(), 150*time.Millisecond)

	if !p.Start() {
		t.Fatalf("start must succeed")
	}
	waitUntil(t, time.Second, func() bool { return !p.IsAnimating() })

	// После завершения плеер снова доступен.
	if !p.Start() {
		t.Fatalf("start after completion must succeed")
	}
	p.Stop()
	waitUntil(t, time.Second, func() bool { return !p.IsAnimating() })
}

func TestPlayer_StopIsSafeWhenIdle(t *testing.T) {
	p := NewPlayerWithDuration(zap.NewNop(), time.Second)
	p.Stop()

	if p.IsAnimating() {
		t.Fatalf("player must stay idle")
	}
}

func TestPlayer_StopSignalEndsLoop(t *testing.T) {
	p := NewPlayerWithDuration(zap.NewNop(), 10*time.Second)

	if !p.Start() {
		t.Fatalf("start must succeed")
	}
	p.Stop()
	waitUntil(t, time.Second, func() bool { return !p.IsAnimating() })

	if frame := p.LastFrame(); frame.Progress != 0 {
		t.Errorf("frame state must reset after stop: %+v", frame)
	}
}

func TestFrameAt(t *testing.T) {
	early := frameAt(0, defaultDuration)
	if early.SteamOpacity != 0.6 {
		t.Errorf("initial steam opacity: got %v want 0.6", early.SteamOpacity)
	}

	late := frameAt(defaultDuration, defaultDuration)
	if late.Progress != 1 {
		t.Errorf("final progress: got %v want 1", late.Progress)
	}
	if late.SteamOpacity != 0 {
		t.Errorf("steam must dissipate by the end, got %v", late.SteamOpacity)
	}
}
