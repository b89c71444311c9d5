// Package layout computes the composition plan for a single frame: given
// the terminal size, the chosen art and the collected info sections, it
// decides side-by-side vs stacked placement and exact cell geometry.
//
// Everything here is pure. The terminal is sampled once by the caller and
// passed in; there is no re-layout during a run.
package layout

import (
	"github.com/haryoiro/slowfetch/internal/art"
	"github.com/haryoiro/slowfetch/internal/structures"
	"github.com/mattn/go-runewidth"
)

// Layout constants. These are product choices, not protocol requirements;
// they are named here instead of living as magic numbers in the math.
const (
	// Gutter is the fixed gap between the art column and the info column.
	Gutter = 3

	// MinColumns and MinRows bound the smallest usable terminal. Below
	// either, the minimal single-column plan is used and art is omitted.
	MinColumns = 20
	MinRows    = 5

	// MinInfoWidth is the assumed info column width when there are no
	// info lines to measure.
	MinInfoWidth = 10

	// MaxImageFraction caps how much of the terminal width a raster
	// image's cell box may claim.
	MaxImageFraction = 0.5
)

// Ellipsis marks truncated info values.
const Ellipsis = "…"

// TerminalSize is the terminal's cell grid, sampled once per invocation.
type TerminalSize struct {
	Columns int
	Rows    int
}

// Mode is the chosen layout mode.
type Mode int

const (
	// ModeWide places art left and info right, separated by Gutter.
	ModeWide Mode = iota
	// ModeNarrow stacks art on top of the info sections.
	ModeNarrow
	// ModeMinimal drops the art entirely: info lines only, one per row.
	ModeMinimal
)

func (m Mode) String() string {
	switch m {
	case ModeWide:
		return "wide"
	case ModeNarrow:
		return "narrow"
	case ModeMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Plan is the computed geometry for one frame. All positions are 0-based
// cell offsets from the top-left of the output area. The plan never
// exceeds the terminal in either dimension; the renderer truncates
// content to fit it.
type Plan struct {
	Mode Mode

	// Art block placement and size in cells. Zero size in ModeMinimal.
	ArtCol    int
	ArtRow    int
	ArtWidth  int
	ArtHeight int

	// Info block placement. InfoWidth is the total width available to
	// the info block, including any box chrome the renderer draws.
	InfoCol   int
	InfoRow   int
	InfoWidth int

	// InfoRows is how many rows the rendered info block occupies.
	InfoRows int

	TotalWidth  int
	TotalHeight int
}

// Measure returns the display cell width of a string (wide runes count
// as two cells).
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits a string into width cells, marking cut content with the
// ellipsis. Truncating an already-truncated string to the same width is
// the identity.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// infoContentWidth is the widest "Label: Value" pair (or section title)
// across all sections, floored at MinInfoWidth when nothing measures.
func infoContentWidth(sections []structures.Section) int {
	w := 0
	for _, s := range sections {
		if sw := s.Width(Measure); sw > w {
			w = sw
		}
	}
	if w < MinInfoWidth {
		w = MinInfoWidth
	}
	return w
}

// boxedRows is the row count of the boxed info block: each section adds
// its lines plus a top and bottom border.
func boxedRows(sections []structures.Section) int {
	rows := 0
	for _, s := range sections {
		rows += len(s.Lines) + 2
	}
	return rows
}

func lineCount(sections []structures.Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Lines)
	}
	return n
}

// artFootprint is the art's natural cell box, with raster images capped
// at MaxImageFraction of the terminal width (aspect preserved; the
// terminal does the pixel scaling, we only pick the cell box).
func artFootprint(term TerminalSize, a art.Art) (int, int) {
	w, h := a.CellSize()

	switch a.(type) {
	case *art.GlyphArt:
		return w, h
	case *art.RasterImage:
		maxW := int(MaxImageFraction * float64(term.Columns))
		if maxW >= 1 && w > maxW {
			h = (h*maxW + w/2) / w
			if h < 1 {
				h = 1
			}
			w = maxW
		}
		// Keep at least one row free below the image so the cursor can
		// park under the frame.
		if maxH := term.Rows - 1; maxH >= 1 && h > maxH {
			w = (w*maxH + h/2) / h
			if w < 1 {
				w = 1
			}
			h = maxH
		}
		return w, h
	default:
		return w, h
	}
}

// Compute builds the composition plan. It is deterministic and
// side-effect free; callers pass the sampled terminal size explicitly.
func Compute(term TerminalSize, a art.Art, sections []structures.Section) Plan {
	if term.Columns < MinColumns || term.Rows < MinRows {
		return minimalPlan(term, sections)
	}

	artW, artH := artFootprint(term, a)
	infoW := infoContentWidth(sections)
	infoRows := boxedRows(sections)

	// Wide mode when the art, the gutter and the longest info pair all
	// fit on one row. The threshold is exact: no hysteresis, the same
	// inputs always pick the same mode.
	if term.Columns >= artW+Gutter+infoW {
		return widePlan(term, artW, artH, infoW, infoRows)
	}

	// Stacked art needs at least one info row under it to be worth it;
	// otherwise fall back to info only.
	if artH+1 > term.Rows {
		return minimalPlan(term, sections)
	}

	return narrowPlan(term, artW, artH, infoW, infoRows)
}

func widePlan(term TerminalSize, artW, artH, infoW, infoRows int) Plan {
	infoCol := artW + Gutter
	avail := term.Columns - infoCol

	height := artH
	if infoRows > height {
		height = infoRows
	}
	if height > term.Rows {
		height = term.Rows
	}

	used := infoW + 4 // box borders and margins
	if used > avail {
		used = avail
	}

	return Plan{
		Mode:        ModeWide,
		ArtCol:      0,
		ArtRow:      0,
		ArtWidth:    artW,
		ArtHeight:   artH,
		InfoCol:     infoCol,
		InfoRow:     0,
		InfoWidth:   avail,
		InfoRows:    infoRows,
		TotalWidth:  infoCol + used,
		TotalHeight: height,
	}
}

func narrowPlan(term TerminalSize, artW, artH, infoW, infoRows int) Plan {
	if artW > term.Columns {
		artW = term.Columns
	}
	artCol := (term.Columns - artW) / 2

	// Art and info block are both centered so the stack reads as one
	// column. The info box never grows past the terminal.
	boxW := infoW + 4
	if boxW > term.Columns {
		boxW = term.Columns
	}
	infoCol := (term.Columns - boxW) / 2

	height := artH + infoRows
	if height > term.Rows {
		height = term.Rows
	}

	width := artCol + artW
	if infoCol+boxW > width {
		width = infoCol + boxW
	}

	return Plan{
		Mode:        ModeNarrow,
		ArtCol:      artCol,
		ArtRow:      0,
		ArtWidth:    artW,
		ArtHeight:   artH,
		InfoCol:     infoCol,
		InfoRow:     artH,
		InfoWidth:   boxW,
		InfoRows:    infoRows,
		TotalWidth:  width,
		TotalHeight: height,
	}
}

func minimalPlan(term TerminalSize, sections []structures.Section) Plan {
	rows := lineCount(sections)
	if rows > term.Rows {
		rows = term.Rows
	}

	return Plan{
		Mode:        ModeMinimal,
		InfoCol:     0,
		InfoRow:     0,
		InfoWidth:   term.Columns,
		InfoRows:    rows,
		TotalWidth:  term.Columns,
		TotalHeight: rows,
	}
}
