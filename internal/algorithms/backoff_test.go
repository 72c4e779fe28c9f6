package algorithms

import (
	"math"
	"testing"
	"time"
)

func TestExponentialBackoff_NextDelay(t *testing.T) {
	tests := []struct {
		name          string
		initialDelay  time.Duration
		maxDelay      time.Duration
		attemptNumber int
		want          time.Duration
	}{
		{"first retry uses initial delay", 100 * time.Millisecond, time.Minute, 0, 100 * time.Millisecond},
		{"second retry doubles", 100 * time.Millisecond, time.Minute, 1, 200 * time.Millisecond},
		{"fourth retry", 100 * time.Millisecond, time.Minute, 3, 800 * time.Millisecond},
		{"capped at max delay", time.Second, 5 * time.Second, 10, 5 * time.Second},
		{"huge attempt returns max delay", time.Second, time.Hour, 200, time.Hour},
		{"negative attempt", time.Second, time.Hour, -1, 0},
		{"zero initial delay", 0, time.Hour, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eb := newExponentialBackoff(tt.initialDelay, tt.maxDelay)
			if got := eb.NextDelay(tt.attemptNumber, nil); got != tt.want {
				t.Errorf("NextDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalcExponentialDelay_NeverOverflows(t *testing.T) {
	tests := []struct {
		attempt  int
		initial  time.Duration
		maxDelay time.Duration
		want     time.Duration
	}{
		{0, 5, math.MaxInt64, 5},
		{3, 5, math.MaxInt64, 40},
		{60, 5, math.MaxInt64, 5 << 60},
		{62, 5, math.MaxInt64, math.MaxInt64},
		{63, time.Nanosecond, math.MaxInt64, math.MaxInt64},
		{100, time.Millisecond, time.Second, time.Second},
		{0, time.Second, time.Millisecond, time.Millisecond},
		{4, time.Millisecond, time.Second, 16 * time.Millisecond},
		{10, time.Millisecond, time.Second, time.Second},
	}

	for _, tt := range tests {
		got := calcExponentialDelay(tt.attempt, tt.initial, tt.maxDelay)
		if got != tt.want {
			t.Errorf("attempt %d, initial %v, max %v: expected %v, got %v",
				tt.attempt, tt.initial, tt.maxDelay, tt.want, got)
		}
		if got < 0 || got > tt.maxDelay {
			t.Errorf("attempt %d: delay %v outside [0, %v]", tt.attempt, got, tt.maxDelay)
		}
	}
}

func TestJitteredBackoff_StaysWithinJitterRange(t *testing.T) {
	jb := newJitteredBackoff(100*time.Millisecond, time.Minute, 0.2)

	for attempt := range 5 {
		base := calcExponentialDelay(attempt, 100*time.Millisecond, time.Minute)
		lo := time.Duration(float64(base) * 0.8)
		hi := time.Duration(float64(base) * 1.2)

		for range 100 {
			got := jb.NextDelay(attempt, nil)
			if got < lo || got > hi {
				t.Fatalf("attempt %d: delay %v outside [%v, %v]", attempt, got, lo, hi)
			}
		}
	}
}

func TestJitteredBackoff_DeterministicSource(t *testing.T) {
	jb := newJitteredBackoff(time.Second, time.Minute, 0.5)

	jb.float64Fn = func() float64 { return 1 }
	if got := jb.NextDelay(0, nil); got != 1500*time.Millisecond {
		t.Errorf("max jitter: expected 1.5s, got %v", got)
	}

	jb.float64Fn = func() float64 { return 0 }
	if got := jb.NextDelay(0, nil); got != 500*time.Millisecond {
		t.Errorf("min jitter: expected 500ms, got %v", got)
	}
}

func TestJitteredBackoff_ClampsFactor(t *testing.T) {
	jb := newJitteredBackoff(time.Second, time.Minute, 7)
	if jb.jitterFactor != 1 {
		t.Errorf("expected jitter factor clamped to 1, got %v", jb.jitterFactor)
	}

	jb = newJitteredBackoff(time.Second, time.Minute, -3)
	if jb.jitterFactor != 0 {
		t.Errorf("expected jitter factor clamped to 0, got %v", jb.jitterFactor)
	}
}

func TestNewBackoffStrategy(t *testing.T) {
	if _, ok := NewBackoffStrategy(BackoffExponential, time.Second, time.Minute, 0).(*exponentialBackoff); !ok {
		t.Error("expected exponential backoff")
	}
	if _, ok := NewBackoffStrategy(BackoffJittered, time.Second, time.Minute, 0.1).(*jitteredBackoff); !ok {
		t.Error("expected jittered backoff")
	}

	uncapped := NewBackoffStrategy(BackoffExponential, time.Second, 0, 0)
	if got := uncapped.NextDelay(10, nil); got != 1024*time.Second {
		t.Errorf("uncapped: expected 1024s, got %v", got)
	}
}

func TestParseBackoffType(t *testing.T) {
	tests := []struct {
		in     string
		want   BackoffType
		wantOK bool
	}{
		{"", BackoffExponential, true},
		{"exponential", BackoffExponential, true},
		{"jittered", BackoffJittered, true},
		{"decorrelated", BackoffExponential, false},
	}

	for _, tt := range tests {
		got, ok := ParseBackoffType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseBackoffType(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if ok && got.String() != tt.in && tt.in != "" {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}
