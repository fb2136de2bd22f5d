package repository_test

import (
	"testing"
	"time"

	"github.com/nlandman/Brokerage-Simulation-Backend/internal/repository"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2026-08-28T10:30:00.123456789Z", time.Date(2026, 8, 28, 10, 30, 0, 123456789, time.UTC)},
		{"2026-08-28T10:30:00Z", time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)},
		{"2026-08-28 10:30:00", time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)},
		{"2026-08-28", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := repository.ParseTime(tc.input)
		if err != nil {
			t.Errorf("ParseTime(%q) failed: %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if _, err := repository.ParseTime("not a timestamp"); err == nil {
		t.Error("Expected ParseTime to reject garbage")
	}
}

func TestParseDecimal(t *testing.T) {
	got, err := repository.ParseDecimal("10.25")
	if err != nil {
		t.Fatalf("ParseDecimal failed: %v", err)
	}
	if got.String() != "10.25" {
		t.Errorf("Expected 10.25, got %s", got)
	}

	if _, err := repository.ParseDecimal("ten"); err == nil {
		t.Error("Expected ParseDecimal to reject garbage")
	}
}
