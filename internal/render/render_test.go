package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/hailam/chessplay/internal/chess"
	"github.com/hailam/chessplay/internal/wire"
)

func TestBoardProducesDecodablePNGOfExpectedSize(t *testing.T) {
	view := wire.ViewPosition(chess.InitialPosition())

	var buf bytes.Buffer
	if err := Board(view, &buf); err != nil {
		t.Fatalf("Board: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != boardPixels || bounds.Dy() != boardPixels {
		t.Fatalf("expected a %dx%d image, got %dx%d", boardPixels, boardPixels, bounds.Dx(), bounds.Dy())
	}
}

func TestBoardOnEmptyPositionStillProducesAPNG(t *testing.T) {
	view := &wire.BoardView{SideToMove: chess.White}

	var buf bytes.Buffer
	if err := Board(view, &buf); err != nil {
		t.Fatalf("Board: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}
}
