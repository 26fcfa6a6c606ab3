// Command chessctl is a UCI-lite command-line driver over the chess
// core: it opens a config store, builds the chess search descriptor,
// and runs a read-eval-print loop accepting a handful of commands. It
// holds no game logic of its own; it only wires internal/chess,
// internal/engine, internal/wire, internal/render, and internal/config
// together.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/seekerror/logw"

	"github.com/hailam/chessplay/internal/chess"
	"github.com/hailam/chessplay/internal/config"
	"github.com/hailam/chessplay/internal/engine"
	"github.com/hailam/chessplay/internal/render"
	"github.com/hailam/chessplay/internal/search"
	"github.com/hailam/chessplay/internal/wire"
)

var (
	depth       = flag.Int("depth", 4, "default search depth in plies")
	ttCapacity  = flag.Int("tt-capacity", 1<<16, "transposition table capacity hint")
	dataDir     = flag.String("data-dir", "", "badger data directory (in-memory if empty)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessctl [options]

chessctl is a UCI-lite driver for the chess search core.

Commands (one per line on stdin):
  position                 reset to the starting position
  go depth N                search N plies and play the best move
  move <from><to>[promo]    apply a move, e.g. e2e4 or e7e8q
  render <path>             write the current position as a PNG
  quit                      exit

Options:
`)
		flag.PrintDefaults()
	}
}

type session struct {
	ctx   context.Context
	store *config.Store
	table *search.Table[*chess.Position]
	pos   *chess.Position
	depth int
	index int
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var store *config.Store
	var err error
	if *dataDir == "" {
		store, err = config.OpenInMemory()
	} else {
		store, err = config.Open(*dataDir)
	}
	if err != nil {
		logw.Exitf(ctx, "Failed to open config store: %v", err)
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		logw.Exitf(ctx, "Failed to load preferences: %v", err)
	}
	if *depth != 0 {
		prefs.SearchDepth = *depth
	}
	if *ttCapacity != 0 {
		prefs.TableCapacity = *ttCapacity
	}
	if err := store.SavePreferences(prefs); err != nil {
		logw.Exitf(ctx, "Failed to save preferences: %v", err)
	}

	s := &session{
		ctx:   ctx,
		store: store,
		table: engine.NewTable(),
		pos:   chess.InitialPosition(),
		depth: prefs.SearchDepth,
	}

	if snap, found, err := store.LoadSession(); err != nil {
		logw.Warningf(ctx, "Failed to load session: %v", err)
	} else if found {
		s.pos = snap.Restore()
		logw.Infof(ctx, "Resumed session: %v", s.pos)
	}

	logw.Infof(ctx, "chessctl ready: depth=%v", s.depth)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "position":
			s.pos = chess.InitialPosition()
			s.index = 0
			fmt.Println("ok")
		case "go":
			s.handleGo(args)
		case "move":
			s.handleMove(args)
		case "render":
			s.handleRender(args)
		case "quit", "exit":
			s.persist()
			return
		default:
			logw.Warningf(ctx, "Unknown command %q", cmd)
		}
	}

	s.persist()
}

func (s *session) handleGo(args []string) {
	d := s.depth
	if len(args) == 2 && args[0] == "depth" {
		if n, err := strconv.Atoi(args[1]); err == nil {
			d = n
		}
	}

	before := s.pos
	m, ok := engine.BestMove(before, d, s.table)
	if !ok {
		fmt.Println("no move (terminal position)")
		return
	}

	after, applied := before.Apply(m)
	if !applied {
		logw.Errorf(s.ctx, "Engine proposed an illegal move %v", m)
		return
	}
	s.pos = after
	s.index++

	score := chess.Evaluate(after)
	rec := wire.Translate(before, after, m, score)
	rec.Index = s.index
	fmt.Printf("bestmove %v eval=%d check=%v mate=%v draw=%v\n", m, score, rec.OpponentInCheck, rec.Checkmate, rec.Draw)

	if rec.Checkmate || rec.Draw {
		s.recordOutcome(before.SideToMove, rec)
	}
}

func (s *session) handleMove(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: move <from><to>[promo]")
		return
	}

	before := s.pos
	m, err := chess.ParseMove(args[0], before)
	if err != nil {
		fmt.Printf("invalid move: %v\n", err)
		return
	}

	after, ok := before.Apply(m)
	if !ok {
		fmt.Println("illegal move")
		return
	}
	s.pos = after
	s.index++

	score := chess.Evaluate(after)
	rec := wire.Translate(before, after, m, score)
	rec.Index = s.index
	fmt.Printf("ok eval=%d check=%v mate=%v draw=%v\n", score, rec.OpponentInCheck, rec.Checkmate, rec.Draw)

	if rec.Checkmate || rec.Draw {
		s.recordOutcome(before.SideToMove, rec)
	}
}

func (s *session) handleRender(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: render <path>")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		logw.Errorf(s.ctx, "Failed to create %v: %v", args[0], err)
		return
	}
	defer f.Close()

	view := wire.ViewPosition(s.pos)
	if err := render.Board(view, f); err != nil {
		logw.Errorf(s.ctx, "Failed to render board: %v", err)
		return
	}
	fmt.Printf("wrote %v\n", args[0])
}

// recordOutcome updates persisted stats once a move ends the game.
// mover is the side that just moved into the terminal position.
func (s *session) recordOutcome(mover chess.Color, rec wire.MoveRecord) {
	if rec.Draw {
		if err := s.store.RecordResult(false, true); err != nil {
			logw.Errorf(s.ctx, "Failed to record draw: %v", err)
		}
		return
	}
	if err := s.store.RecordResult(mover == chess.White, false); err != nil {
		logw.Errorf(s.ctx, "Failed to record result: %v", err)
	}
}

func (s *session) persist() {
	snap := config.SnapshotPosition(s.pos)
	if err := s.store.SaveSession(snap); err != nil {
		logw.Errorf(s.ctx, "Failed to save session: %v", err)
	}
}
