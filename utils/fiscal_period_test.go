package utils

import (
	"testing"
	"time"
)

func TestFiscalQuarterOf(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "april starts Q1", date: "2024-04-01", expected: "Q1-2024"},
		{name: "june ends Q1", date: "2024-06-30", expected: "Q1-2024"},
		{name: "july starts Q2", date: "2024-07-01", expected: "Q2-2024"},
		{name: "october starts Q3", date: "2024-10-15", expected: "Q3-2024"},
		{name: "december stays in Q3", date: "2024-12-31", expected: "Q3-2024"},
		{name: "january is Q4 of its own calendar year", date: "2024-01-15", expected: "Q4-2024"},
		{name: "march ends Q4", date: "2025-03-31", expected: "Q4-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date %q: %v", tt.date, err)
			}
			if got := FiscalQuarterOf(at); got != tt.expected {
				t.Errorf("FiscalQuarterOf(%s) = %q, want %q", tt.date, got, tt.expected)
			}
		})
	}
}

func TestFiscalQuarter(t *testing.T) {
	fallback := time.Date(2024, time.August, 10, 12, 0, 0, 0, time.UTC)

	t.Run("payment date wins over fallback", func(t *testing.T) {
		if got := FiscalQuarter("2024-05-20", fallback); got != "Q1-2024" {
			t.Errorf("FiscalQuarter = %q, want %q", got, "Q1-2024")
		}
	})

	t.Run("empty date uses fallback", func(t *testing.T) {
		if got := FiscalQuarter("", fallback); got != "Q2-2024" {
			t.Errorf("FiscalQuarter = %q, want %q", got, "Q2-2024")
		}
	})

	t.Run("unparseable date uses fallback", func(t *testing.T) {
		if got := FiscalQuarter("20-05-2024", fallback); got != "Q2-2024" {
			t.Errorf("FiscalQuarter = %q, want %q", got, "Q2-2024")
		}
	})
}
