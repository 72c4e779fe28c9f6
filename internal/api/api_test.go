package api

import (
	"errors"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 5, 1, 14, 3, 4, 56_789_000, loc)

	got := FormatTimestamp(ts)
	if got != "2024-05-01T12:03:04.056Z" {
		t.Errorf("expected 2024-05-01T12:03:04.056Z, got %s", got)
	}
}

func TestFormatTimestamp_ZeroMillis(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2024-01-02T03:04:05.000Z" {
		t.Errorf("expected trailing .000Z, got %s", got)
	}
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 123_000_000, time.UTC)
	parsed, err := ParseTimestamp(FormatTimestamp(ts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("expected %v, got %v", ts, parsed)
	}
}

func TestFormatMillis(t *testing.T) {
	if got := FormatMillis(0); got != "0ms" {
		t.Errorf("expected 0ms, got %s", got)
	}
	if got := FormatMillis(42); got != "42ms" {
		t.Errorf("expected 42ms, got %s", got)
	}
}

func TestParseMillis(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"0ms", 0, false},
		{"12ms", 12 * time.Millisecond, false},
		{"ms", 0, true},
		{"12", 0, true},
		{"-3ms", 0, true},
		{"1.5ms", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMillis(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedMillis) {
				t.Errorf("ParseMillis(%q): expected ErrMalformedMillis, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMillis(%q): expected %v, got %v (err %v)", tt.in, tt.want, got, err)
		}
	}
}

func TestCPULoadResponse_Elapsed(t *testing.T) {
	d, err := CPULoadResponse{CalculationTime: FormatMillis(7)}.Elapsed()
	if err != nil || d != 7*time.Millisecond {
		t.Errorf("expected 7ms, got %v (err %v)", d, err)
	}
}
