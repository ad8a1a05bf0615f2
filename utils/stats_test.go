package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 4, 2, 500*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("expected first average 100, got %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("expected 2 gen/sec, got %v", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 1, 3, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("expected moving average 110, got %v", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.TotalBirths != 5 || s.TotalDeaths != 5 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("zero duration should keep rate, got %v", s.GenerationsPerSecond)
	}
}
