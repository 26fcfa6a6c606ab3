package config

import (
	"testing"

	"github.com/hailam/chessplay/internal/chess"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadPreferencesReturnsDefaultsWhenUnset(t *testing.T) {
	s := openTestStore(t)
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs != DefaultPreferences() {
		t.Fatalf("expected defaults, got %+v", prefs)
	}
}

func TestSaveThenLoadPreferencesRoundTrips(t *testing.T) {
	s := openTestStore(t)
	want := Preferences{SearchDepth: 6, UseTranspositionTable: false, TableCapacity: 1024}
	if err := s.SavePreferences(want); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSessionSnapshotRoundTripsThroughBitboards(t *testing.T) {
	s := openTestStore(t)
	pos := chess.InitialPosition()
	pos, ok := pos.Apply(chess.NewMove(chess.E2, chess.E4))
	if !ok {
		t.Fatalf("expected e2e4 to be legal")
	}

	snap := SnapshotPosition(pos)
	if err := s.SaveSession(snap); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, found, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if !found {
		t.Fatalf("expected a saved session")
	}

	restored := loaded.Restore()
	if !chess.Equals(restored, pos) {
		t.Fatalf("restored position does not match the original:\n%s\nvs\n%s", restored, pos)
	}
}

func TestLoadSessionReportsNotFoundWhenUnset(t *testing.T) {
	s := openTestStore(t)
	_, found, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if found {
		t.Fatalf("expected no saved session")
	}
}

func TestRecordResultAccumulatesStats(t *testing.T) {
	s := openTestStore(t)
	if err := s.RecordResult(true, false); err != nil {
		t.Fatalf("RecordResult win: %v", err)
	}
	if err := s.RecordResult(false, true); err != nil {
		t.Fatalf("RecordResult draw: %v", err)
	}
	if err := s.RecordResult(false, false); err != nil {
		t.Fatalf("RecordResult loss: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	want := Stats{GamesPlayed: 3, Wins: 1, Draws: 1, Losses: 1}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}
