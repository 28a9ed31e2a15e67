package storage

import (
	"testing"
	"time"

	"github.com/san-kum/citysense/internal/snapshot"
)

func TestSaveAndLatest(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	snap := snapshot.Fallback()
	snap.AQI = 95
	fetched := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	if err := s.Save(snap, fetched); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Latest()
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if got.Snapshot.AQI != 95 {
		t.Errorf("expected aqi 95, got %d", got.Snapshot.AQI)
	}
	if !got.Fetched.Equal(fetched) {
		t.Errorf("expected fetched %v, got %v", fetched, got.Fetched)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		snap := snapshot.Fallback()
		snap.FlightCount = i
		if err := s.Save(snap, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.History()
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Snapshot.FlightCount != 2 || entries[2].Snapshot.FlightCount != 0 {
		t.Error("history should be sorted newest first")
	}
}

func TestLatestMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Latest(); err == nil {
		t.Error("expected error when no snapshot is cached")
	}
}
