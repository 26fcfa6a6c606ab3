// Package render turns a wire.BoardView into a PNG diagram: an 8x8
// grid of squares with a small embedded glyph path per occupied
// square, rasterized with oksvg/rasterx the way the teacher's sprite
// manager rasterized its piece assets, and composited with
// golang.org/x/image/draw. There is no live game loop here, only a
// one-shot exporter, since this module only ever needs to hand a CLI
// driver a picture of the position after a move.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/hailam/chessplay/internal/wire"
)

// SquareSize is the pixel size of one board square in the exported PNG.
const SquareSize = 64

const boardPixels = SquareSize * 8

var (
	lightSquare = color.RGBA{0xEE, 0xEE, 0xD2, 0xFF}
	darkSquare  = color.RGBA{0x76, 0x96, 0x56, 0xFF}
	whiteGlyph  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	blackGlyph  = color.RGBA{0x20, 0x20, 0x20, 0xFF}
)

// glyphPaths holds one minimal SVG path per piece kind, colored at
// render time by re-tinting the rasterized pixels (see rasterizeGlyph).
// Shapes are deliberately plain
// (circle for a pawn, overlapping shapes for the rest) since the point
// is exercising the parse/rasterize pipeline, not art.
var glyphPaths = map[wire.Piece]string{
	wire.PawnWhite:   pieceSVG("<circle cx='32' cy='36' r='16'/>"),
	wire.PawnBlack:   pieceSVG("<circle cx='32' cy='36' r='16'/>"),
	wire.KnightWhite: pieceSVG("<path d='M16 52 L24 16 L44 16 L48 28 L36 32 L40 52 Z'/>"),
	wire.KnightBlack: pieceSVG("<path d='M16 52 L24 16 L44 16 L48 28 L36 32 L40 52 Z'/>"),
	wire.BishopWhite: pieceSVG("<path d='M32 10 L46 40 L32 54 L18 40 Z'/>"),
	wire.BishopBlack: pieceSVG("<path d='M32 10 L46 40 L32 54 L18 40 Z'/>"),
	wire.RookWhite:   pieceSVG("<rect x='16' y='20' width='32' height='34'/>"),
	wire.RookBlack:   pieceSVG("<rect x='16' y='20' width='32' height='34'/>"),
	wire.QueenWhite:  pieceSVG("<circle cx='32' cy='32' r='20'/>"),
	wire.QueenBlack:  pieceSVG("<circle cx='32' cy='32' r='20'/>"),
	wire.KingWhite:   pieceSVG("<path d='M28 8 L36 8 L36 18 L46 18 L46 26 L18 26 L18 18 L28 18 Z M20 30 L44 30 L40 56 L24 56 Z'/>"),
	wire.KingBlack:   pieceSVG("<path d='M28 8 L36 8 L36 18 L46 18 L46 26 L18 26 L18 18 L28 18 Z M20 30 L44 30 L40 56 L24 56 Z'/>"),
}

func pieceSVG(body string) string {
	return fmt.Sprintf(`<svg xmlns='http://www.w3.org/2000/svg' width='64' height='64'>%s</svg>`, body)
}

func glyphColor(p wire.Piece) color.Color {
	if p >= wire.PawnBlack {
		return blackGlyph
	}
	return whiteGlyph
}

// rasterizeGlyph parses the SVG path for p and rasterizes it into a
// SquareSize x SquareSize RGBA image, then re-tints every covered pixel
// with glyphColor(p), keeping its alpha.
func rasterizeGlyph(p wire.Piece) (*image.RGBA, error) {
	svg, ok := glyphPaths[p]
	if !ok {
		return nil, nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("parse glyph for piece %d: %w", p, err)
	}
	icon.SetTarget(0, 0, SquareSize, SquareSize)

	img := image.NewRGBA(image.Rect(0, 0, SquareSize, SquareSize))
	scanner := rasterx.NewScannerGV(SquareSize, SquareSize, img, img.Bounds())
	raster := rasterx.NewDasher(SquareSize, SquareSize, scanner)
	icon.Draw(raster, 1.0)

	tint := glyphColor(p)
	tr, tg, tb, _ := tint.RGBA()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			img.Set(x, y, color.RGBA{uint8(tr >> 8), uint8(tg >> 8), uint8(tb >> 8), uint8(a >> 8)})
		}
	}
	return img, nil
}

// Board renders view as a flat-shaded PNG diagram and writes it to w.
func Board(view *wire.BoardView, w io.Writer) error {
	canvas := image.NewRGBA(image.Rect(0, 0, boardPixels, boardPixels))

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := color.RGBA{}
			if (rank+file)%2 == 0 {
				sq = darkSquare
			} else {
				sq = lightSquare
			}
			x0, y0 := file*SquareSize, (7-rank)*SquareSize
			rect := image.Rect(x0, y0, x0+SquareSize, y0+SquareSize)
			draw.Draw(canvas, rect, &image.Uniform{C: sq}, image.Point{}, draw.Src)

			piece := view.Squares[rank*8+file]
			if piece == wire.EmptyPiece {
				continue
			}
			glyph, err := rasterizeGlyph(piece)
			if err != nil {
				return err
			}
			if glyph == nil {
				continue
			}
			draw.Draw(canvas, rect, glyph, image.Point{}, draw.Over)
		}
	}

	return png.Encode(w, canvas)
}
