package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got := ParseDate("2025-09-10")
	want := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(2025-09-10) = %v, want %v", got, want)
	}
}

func TestParseDateEmptyIsEpoch(t *testing.T) {
	if got := ParseDate(""); got.Unix() != 0 {
		t.Errorf("ParseDate(\"\") = %v, want epoch", got)
	}
	if got := ParseDate("not-a-date"); got.Unix() != 0 {
		t.Errorf("ParseDate(invalid) = %v, want epoch", got)
	}
}

func TestIsBefore(t *testing.T) {
	if !IsBefore("2025-01-01", "2025-09-10") {
		t.Error("expected 2025-01-01 before 2025-09-10")
	}
	if IsBefore("2025-09-10", "2025-09-10") {
		t.Error("equal dates must not compare before")
	}
	// empty planned dates sort before everything
	if !IsBefore("", "1971-01-01") {
		t.Error("empty date should compare before any real date")
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2025-09-10"); got != "10 Sep 2025" {
		t.Errorf("DisplayDate = %q", got)
	}
	if got := DisplayDate(""); got != "" {
		t.Errorf("DisplayDate(\"\") = %q", got)
	}
}
