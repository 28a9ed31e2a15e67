package snapshot

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleJSON = `{
  "last_updated": "2025-11-03T10:00:00+00:00",
  "weather": {"temp": 26.4, "condition": "cloudy"},
  "aqi": 150,
  "traffic": {"speed_kmh": 18},
  "metro_density": "high",
  "news_sentiment": 0.35,
  "flight_count": 14
}`

func TestLoadFromHTTP(t *testing.T) {
	var gotBuster string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBuster = r.URL.Query().Get("t")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL)
	l.now = func() time.Time { return time.UnixMilli(1700000000000) }
	snap, live := l.Load()

	if !live {
		t.Error("expected a live fetch")
	}
	if gotBuster != "1700000000000" {
		t.Errorf("expected cache-busting param, got %q", gotBuster)
	}
	if snap.AQI != 150 {
		t.Errorf("expected aqi 150, got %d", snap.AQI)
	}
	if snap.Weather.Condition != "cloudy" {
		t.Errorf("expected condition cloudy, got %s", snap.Weather.Condition)
	}
	if snap.FlightCount != 14 {
		t.Errorf("expected flight count 14, got %d", snap.FlightCount)
	}
	if snap.LastUpdated.UTC().Hour() != 10 {
		t.Errorf("expected 10:00 UTC timestamp, got %v", snap.LastUpdated)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}

	snap, _ := NewLoader(path).Load()
	if snap.MetroDensity != "high" {
		t.Errorf("expected density high, got %s", snap.MetroDensity)
	}
	if snap.NewsSentiment != 0.35 {
		t.Errorf("expected sentiment 0.35, got %f", snap.NewsSentiment)
	}
}

func TestLoadFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	snap, live := NewLoader(srv.URL).Load()
	if live {
		t.Error("transport failure must not count as a live fetch")
	}
	if *snap != *Fallback() {
		t.Errorf("expected fallback snapshot, got %+v", snap)
	}
}

func TestLoadFallsBackOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	snap, _ := NewLoader(srv.URL).Load()
	if *snap != *Fallback() {
		t.Errorf("expected fallback snapshot, got %+v", snap)
	}
}

func TestLoadFallsBackOnMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	snap, _ := NewLoader(srv.URL).Load()
	if *snap != *Fallback() {
		t.Errorf("expected fallback snapshot, got %+v", snap)
	}
}

func TestLoadNormalizesPartialPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"aqi": 80, "weather": {"temp": 19, "condition": "fog"}}`))
	}))
	defer srv.Close()

	snap, _ := NewLoader(srv.URL).Load()
	if snap.AQI != 80 {
		t.Errorf("present field must win, got aqi %d", snap.AQI)
	}
	if snap.Weather.Condition != "sunny" {
		t.Errorf("bad condition must default, got %s", snap.Weather.Condition)
	}
	if snap.Traffic.SpeedKMH != 25 || snap.FlightCount != 8 {
		t.Errorf("missing fields must default, got %+v", snap)
	}
}
