// Package config is the ambient persistence layer for the CLI driver:
// engine preferences, a resumable session snapshot, and running game
// statistics, all backed by BadgerDB the way the teacher's
// internal/storage backed UI preferences and stats. Nothing in
// internal/chess, internal/search, or internal/engine imports this
// package; it exists purely for the outer driver.
package config

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessplay/internal/chess"
)

const (
	keyPreferences = "preferences"
	keySession     = "session"
	keyStats       = "stats"
)

// Preferences is the engine configuration the CLI driver reads at
// startup and may update from flags or commands.
type Preferences struct {
	SearchDepth           int  `json:"search_depth"`
	UseTranspositionTable bool `json:"use_transposition_table"`
	TableCapacity         int  `json:"table_capacity"`
}

// DefaultPreferences mirrors a reasonable out-of-the-box engine: modest
// search depth, transposition table on.
func DefaultPreferences() Preferences {
	return Preferences{
		SearchDepth:           4,
		UseTranspositionTable: true,
		TableCapacity:         1 << 16,
	}
}

// Stats accumulates outcomes across CLI sessions.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Draws       int `json:"draws"`
}

// SessionSnapshot is a resumable position, stored bitboard-native so
// loading it never round-trips through a textual notation.
type SessionSnapshot struct {
	Pieces         [2][6]uint64 `json:"pieces"`
	SideToMove     chess.Color  `json:"side_to_move"`
	CastlingRights uint8        `json:"castling_rights"`
	EnPassant      int          `json:"en_passant"`
	HalfMoveClock  int          `json:"halfmove_clock"`
	FullMoveNumber int          `json:"fullmove_number"`
}

// SnapshotPosition captures p's full state into a SessionSnapshot.
func SnapshotPosition(p *chess.Position) SessionSnapshot {
	snap := SessionSnapshot{
		SideToMove:     p.SideToMove,
		CastlingRights: uint8(p.CastlingRights),
		EnPassant:      int(p.EnPassant),
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			snap.Pieces[c][pt] = uint64(p.Pieces[c][pt])
		}
	}
	return snap
}

// Restore reconstructs a *chess.Position directly from the snapshot's
// bitboards, bypassing InitialPosition and any notation entirely.
func (snap SessionSnapshot) Restore() *chess.Position {
	return chess.FromBitboards(
		snap.Pieces,
		snap.SideToMove,
		chess.CastlingRights(snap.CastlingRights),
		chess.Square(snap.EnPassant),
		snap.HalfMoveClock,
		snap.FullMoveNumber,
	)
}

// Store wraps a BadgerDB instance holding preferences, the resumable
// session, and running stats.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an in-memory badger database, for tests and
// short-lived sessions that don't want a directory on disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) load(key string, v any) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}

// SavePreferences persists prefs under "preferences".
func (s *Store) SavePreferences(prefs Preferences) error {
	return s.save(keyPreferences, prefs)
}

// LoadPreferences returns the stored preferences, or DefaultPreferences
// if none have been saved yet.
func (s *Store) LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()
	_, err := s.load(keyPreferences, &prefs)
	return prefs, err
}

// SaveSession persists the current session snapshot under "session".
func (s *Store) SaveSession(snap SessionSnapshot) error {
	return s.save(keySession, snap)
}

// LoadSession returns the stored session and true, or false if no
// session has been saved.
func (s *Store) LoadSession() (SessionSnapshot, bool, error) {
	var snap SessionSnapshot
	found, err := s.load(keySession, &snap)
	return snap, found, err
}

// SaveStats persists stats under "stats".
func (s *Store) SaveStats(stats Stats) error {
	return s.save(keyStats, stats)
}

// LoadStats returns the stored stats, or a zero Stats if none exist.
func (s *Store) LoadStats() (Stats, error) {
	var stats Stats
	_, err := s.load(keyStats, &stats)
	return stats, err
}

// RecordResult updates and persists Stats for one completed game.
func (s *Store) RecordResult(won, draw bool) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesPlayed++
	switch {
	case draw:
		stats.Draws++
	case won:
		stats.Wins++
	default:
		stats.Losses++
	}
	return s.SaveStats(stats)
}
