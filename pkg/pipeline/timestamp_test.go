package pipeline

import (
	"testing"
	"time"
)

func TestTimestamp_SameInstant(t *testing.T) {
	instant := time.Date(2024, 3, 7, 9, 5, 1, 123456789, time.FixedZone("CET", 3600))
	ts := NewTimestamp(instant)

	if ts.UnixNano() != instant.UnixNano() {
		t.Errorf("expected %d nanos, got %d", instant.UnixNano(), ts.UnixNano())
	}

	parsed, err := time.Parse(DisplayLayout, ts.Display())
	if err != nil {
		t.Fatalf("display string does not parse: %v", err)
	}
	if parsed.Unix() != instant.Unix() {
		t.Errorf("display %q is %d, expected %d", ts.Display(), parsed.Unix(), instant.Unix())
	}
}

func TestTimestamp_DisplayFormat(t *testing.T) {
	ts := Timestamp{Time: time.Date(2003, 7, 1, 10, 52, 37, 0, time.FixedZone("", 2*3600))}

	expected := "Tue, 1 Jul 2003 10:52:37 +0200"
	if got := ts.Display(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTimestamp_FileStemOrdering(t *testing.T) {
	base := time.Unix(1700000000, 0)
	earlier := NewTimestamp(base)
	later := NewTimestamp(base.Add(time.Nanosecond))

	if !(earlier.FileStem() < later.FileStem()) {
		t.Errorf("expected %s < %s", earlier.FileStem(), later.FileStem())
	}
	if earlier.FileStem() != "1700000000000000000" {
		t.Errorf("unexpected stem %s", earlier.FileStem())
	}
}

func TestVerdict_String(t *testing.T) {
	tests := []struct {
		v    Verdict
		want string
	}{
		{VerdictWarmup, "warmup"},
		{VerdictDrop, "drop"},
		{VerdictAccept, "accept"},
		{Verdict(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Verdict(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
