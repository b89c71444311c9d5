// Package art is the art repository: palette-recolorable glyph logos kept
// as tagged string literals, plus raster image probing for the -i path.
//
// Glyph sources use inline color tags: "{3}" switches the palette index
// for the characters that follow, per line. Index 0 means "untagged" and
// renders with the palette fallback color.
package art

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	// Register the decoders the terminal protocols can display.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Cell is one glyph-art character with its palette color index.
type Cell struct {
	Ch    rune
	Color int
}

// Art is the tagged variant over glyph art and raster images. It is
// sealed: the layout engine and renderer type-switch over the two
// implementations.
type Art interface {
	// CellSize returns the natural footprint in terminal cells. For
	// raster images this is a suggestion derived from pixel aspect; the
	// layout engine caps and adjusts it.
	CellSize() (width, height int)

	sealed()
}

// GlyphArt is text art: rows of colored cells.
type GlyphArt struct {
	Rows [][]Cell

	width int
}

func (g *GlyphArt) sealed() {}

// CellSize returns the widest row in display cells and the row count.
func (g *GlyphArt) CellSize() (int, int) {
	return g.width, len(g.Rows)
}

// RasterImage is a decoded image, opaque beyond its pixel dimensions.
// The terminal scales it; we only pick a target cell box.
type RasterImage struct {
	Path   string
	Width  int // pixels
	Height int // pixels
}

func (r *RasterImage) sealed() {}

// CellSize suggests a cell box preserving the pixel aspect ratio,
// assuming terminal cells are about twice as tall as wide.
func (r *RasterImage) CellSize() (int, int) {
	const baseRows = 12
	if r.Height <= 0 || r.Width <= 0 {
		return 2 * baseRows, baseRows
	}
	aspect := float64(r.Width) / float64(r.Height)
	cols := int(float64(baseRows)*aspect*2 + 0.5)
	if cols < 1 {
		cols = 1
	}
	return cols, baseRows
}

// Parse turns {n}-tagged text into glyph art. Tags are consumed; anything
// else, including trailing spaces, is kept as cells.
func Parse(src string) *GlyphArt {
	g := &GlyphArt{}

	for _, line := range strings.Split(strings.Trim(src, "\n"), "\n") {
		var row []Cell
		color := 0

		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			if runes[i] == '{' && i+2 < len(runes) && runes[i+2] == '}' &&
				runes[i+1] >= '0' && runes[i+1] <= '9' {
				color = int(runes[i+1] - '0')
				i += 2
				continue
			}
			row = append(row, Cell{Ch: runes[i], Color: color})
		}

		// Footprint in display cells, not runes: CJK art is 2 cells wide.
		w := 0
		for _, c := range row {
			w += runewidth.RuneWidth(c.Ch)
		}
		if w > g.width {
			g.width = w
		}
		g.Rows = append(g.Rows, row)
	}

	return g
}

// DecodeError indicates an image that could not be read or decoded.
// It is fatal: the run exits without writing a partial frame.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// LoadImage validates an image path and reads its intrinsic dimensions.
// The pixel data itself stays on disk; the image protocol reads it later.
func LoadImage(path string) (*RasterImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &RasterImage{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

// LoadGlyphFile parses a user-supplied {n}-tagged art file (custom_art).
func LoadGlyphFile(path string) (*GlyphArt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}
