// Package render walks a composition plan and emits the styled frame:
// palette-colored glyph rows interleaved with boxed info sections, or a
// blank art area later filled through a terminal image protocol.
//
// All output goes through a single writer in one pass. The first write
// error aborts the render and is returned; there is no partial retry.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haryoiro/slowfetch/internal/art"
	"github.com/haryoiro/slowfetch/internal/layout"
	"github.com/haryoiro/slowfetch/internal/structures"
)

// Box drawing pieces for the section borders.
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// ImageEmitter places a raster image at the cursor through a terminal
// graphics protocol. Satisfied by the timg protocols.
type ImageEmitter interface {
	Display(w io.Writer, imagePath string, widthCells, heightCells int) error
}

// Renderer turns a plan plus the underlying art and info data into exact
// terminal writes.
type Renderer struct {
	out     io.Writer
	err     error
	palette structures.Palette
	image   ImageEmitter

	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	keyStyle    lipgloss.Style
	valueStyle  lipgloss.Style
	artStyles   map[int]lipgloss.Style
}

// New creates a renderer writing to w with the given palette. emitter may
// be nil when no raster art will be rendered.
func New(w io.Writer, palette structures.Palette, emitter ImageEmitter) *Renderer {
	return &Renderer{
		out:     w,
		palette: palette,
		image:   emitter,

		borderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Border)),
		titleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Title)).Bold(true),
		keyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Key)),
		valueStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Value)),
		artStyles:   make(map[int]lipgloss.Style),
	}
}

// Render writes one frame according to the plan. It returns the first
// write error, or an image protocol error for raster art.
func (r *Renderer) Render(plan layout.Plan, a art.Art, sections []structures.Section) error {
	switch plan.Mode {
	case layout.ModeMinimal:
		r.renderMinimal(plan, sections)
	case layout.ModeWide:
		r.renderWide(plan, a, sections)
	case layout.ModeNarrow:
		r.renderNarrow(plan, a, sections)
	}
	if r.err != nil {
		return r.err
	}

	// Raster art is emitted after the frame: reposition the cursor into
	// the reserved art area, stream the protocol frames, come back.
	if img, ok := a.(*art.RasterImage); ok && plan.Mode != layout.ModeMinimal {
		r.emitImage(plan, img)
	}

	return r.err
}

// write funnels every byte through one error check so a broken pipe
// stops the pass immediately.
func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, s)
}

func (r *Renderer) renderMinimal(plan layout.Plan, sections []structures.Section) {
	written := 0
	for _, s := range sections {
		for _, line := range s.Lines {
			if written >= plan.TotalHeight {
				return
			}
			r.write(r.plainLine(line, plan.InfoWidth))
			r.write("\n")
			written++
		}
	}
}

func (r *Renderer) renderWide(plan layout.Plan, a art.Art, sections []structures.Section) {
	artLines := r.artLines(a, plan)
	innerW := plan.InfoWidth - 4
	infoLines := r.sectionBoxLines(sections, innerW)

	blank := strings.Repeat(" ", plan.ArtWidth)
	gutter := strings.Repeat(" ", plan.InfoCol-plan.ArtWidth)

	for row := 0; row < plan.TotalHeight; row++ {
		hasInfo := row < len(infoLines)

		if row < len(artLines) {
			r.write(artLines[row])
		} else if hasInfo {
			r.write(blank)
		}

		if hasInfo {
			r.write(gutter)
			r.write(infoLines[row])
		}
		r.write("\n")
	}
}

func (r *Renderer) renderNarrow(plan layout.Plan, a art.Art, sections []structures.Section) {
	artLines := r.artLines(a, plan)
	innerW := plan.InfoWidth - 4
	infoLines := r.sectionBoxLines(sections, innerW)

	artIndent := strings.Repeat(" ", plan.ArtCol)
	infoIndent := strings.Repeat(" ", plan.InfoCol)

	row := 0
	for _, line := range artLines {
		if row >= plan.TotalHeight {
			return
		}
		r.write(artIndent)
		r.write(line)
		r.write("\n")
		row++
	}
	for _, line := range infoLines {
		if row >= plan.TotalHeight {
			return
		}
		r.write(infoIndent)
		r.write(line)
		r.write("\n")
		row++
	}
}

// artLines renders the art block to one string per row, each exactly
// plan.ArtWidth cells wide. Raster art reserves blank rows; the protocol
// paints them afterwards.
func (r *Renderer) artLines(a art.Art, plan layout.Plan) []string {
	switch v := a.(type) {
	case *art.GlyphArt:
		return r.glyphLines(v, plan.ArtWidth)
	case *art.RasterImage:
		lines := make([]string, plan.ArtHeight)
		blank := strings.Repeat(" ", plan.ArtWidth)
		for i := range lines {
			lines[i] = blank
		}
		return lines
	default:
		return nil
	}
}

// glyphLines styles each row by palette index, batching runs of the same
// color into one styled fragment. Styles reset per fragment, so colors
// never bleed into the next line.
func (r *Renderer) glyphLines(g *art.GlyphArt, width int) []string {
	lines := make([]string, 0, len(g.Rows))

	for _, row := range g.Rows {
		var b strings.Builder
		var run strings.Builder
		used := 0
		color := 0

		flush := func() {
			if run.Len() > 0 {
				b.WriteString(r.artStyle(color).Render(run.String()))
				run.Reset()
			}
		}

		for _, cell := range row {
			cw := layout.Measure(string(cell.Ch))
			// A wide rune straddling the boundary is dropped, never
			// half-drawn into the gutter.
			if used+cw > width {
				break
			}
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			run.WriteRune(cell.Ch)
			used += cw
		}
		flush()

		if used < width {
			b.WriteString(strings.Repeat(" ", width-used))
		}
		lines = append(lines, b.String())
	}

	return lines
}

func (r *Renderer) artStyle(index int) lipgloss.Style {
	if s, ok := r.artStyles[index]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(r.palette.Color(index)))
	r.artStyles[index] = s
	return s
}

// sectionBoxLines builds the boxed info column: every section gets a
// rounded-border box with its title centered in the top rule, and all
// boxes share the same inner width.
func (r *Renderer) sectionBoxLines(sections []structures.Section, innerW int) []string {
	if innerW < 1 {
		innerW = 1
	}

	// All boxes take the width of the widest content so the column lines up.
	width := 0
	for _, s := range sections {
		if w := s.Width(layout.Measure); w > width {
			width = w
		}
	}
	if width > innerW {
		width = innerW
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, s := range sections {
		lines = append(lines, r.boxLines(s, width)...)
	}
	return lines
}

func (r *Renderer) boxLines(s structures.Section, width int) []string {
	lines := make([]string, 0, len(s.Lines)+2)

	// Top border with centered title: ╭── Title ──╮
	title := layout.Truncate(s.Title, width)
	dashes := width - layout.Measure(title)
	left := dashes / 2
	right := dashes - left
	lines = append(lines, r.borderStyle.Render(boxTopLeft+strings.Repeat(boxHorizontal, left))+
		" "+r.titleStyle.Render(title)+" "+
		r.borderStyle.Render(strings.Repeat(boxHorizontal, right)+boxTopRight))

	border := r.borderStyle.Render(boxVertical)
	for _, line := range s.Lines {
		content, contentW := r.styledPair(line, width)
		pad := width - contentW
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, border+" "+content+strings.Repeat(" ", pad)+" "+border)
	}

	lines = append(lines, r.borderStyle.Render(
		boxBottomLeft+strings.Repeat(boxHorizontal, width+2)+boxBottomRight))

	return lines
}

// styledPair renders "Label: Value" fitted into width cells, truncating
// the value first and the label only when it alone overflows. A cut is
// always visible: even a value squeezed out entirely leaves its ellipsis.
func (r *Renderer) styledPair(line structures.InfoLine, width int) (string, int) {
	labelW := layout.Measure(line.Label)
	if labelW >= width {
		label := layout.Truncate(line.Label, width)
		return r.keyStyle.Render(label), layout.Measure(label)
	}
	if labelW+2 >= width {
		rest := layout.Truncate(": "+line.Value, width-labelW)
		return r.keyStyle.Render(line.Label) + r.valueStyle.Render(rest),
			labelW + layout.Measure(rest)
	}

	value := layout.Truncate(line.Value, width-labelW-2)
	return r.keyStyle.Render(line.Label) + ": " + r.valueStyle.Render(value),
		labelW + 2 + layout.Measure(value)
}

// plainLine is the minimal-mode row: the pair hard-truncated to the
// terminal width, without box chrome.
func (r *Renderer) plainLine(line structures.InfoLine, width int) string {
	s, _ := r.styledPair(line, width)
	return s
}

// emitImage repositions the cursor to the art area's top-left cell,
// streams the image protocol with the plan's exact cell box, and returns
// the cursor below the frame. The declared cell dimensions always match
// the plan; the terminal handles the pixel scaling.
func (r *Renderer) emitImage(plan layout.Plan, img *art.RasterImage) {
	if r.image == nil {
		r.err = fmt.Errorf("no terminal image protocol available")
		return
	}
	if r.err != nil {
		return
	}

	up := plan.TotalHeight - plan.ArtRow
	r.write(fmt.Sprintf("\x1b[%dA", up))
	if plan.ArtCol > 0 {
		r.write(fmt.Sprintf("\x1b[%dC", plan.ArtCol))
	}

	if r.err == nil {
		r.err = r.image.Display(r.out, img.Path, plan.ArtWidth, plan.ArtHeight)
	}

	r.write(fmt.Sprintf("\x1b[%dB\r", up))
}
