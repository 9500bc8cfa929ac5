package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/config"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

var (
	backgroundColor = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	gridLineColor   = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
)

// PNGExporter paints a board as an image. Each cell is a tile cut from a
// generated 4x4 sprite sheet at the cell's SpriteRegion, tinted by status.
type PNGExporter struct {
	CellPixels int
	FontSize   float64
	Labels     bool
	Theme      Theme

	sheets map[core.Color]image.Image
}

// NewPNGExporter creates an exporter from export and theme settings.
func NewPNGExporter(ec config.ExportConfig, theme Theme) *PNGExporter {
	return &PNGExporter{
		CellPixels: ec.CellPixels,
		FontSize:   ec.FontSize,
		Labels:     ec.Labels,
		Theme:      theme,
		sheets:     make(map[core.Color]image.Image),
	}
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}

// Sheet returns the sprite sheet for one line color. Tile (col, row) shows
// up when col >= 2, left when col is odd, down when row >= 2 and right when
// row is odd, matching SpriteRegion.
func (e *PNGExporter) Sheet(c core.Color) image.Image {
	if img, ok := e.sheets[c]; ok {
		return img
	}

	tile := float64(e.CellPixels)
	dc := gg.NewContext(e.CellPixels*4, e.CellPixels*4)
	dc.SetColor(rgba(c))
	dc.SetLineWidth(tile / 6)
	dc.SetLineCapRound()

	for row := range 4 {
		for col := range 4 {
			cx := (float64(col) + 0.5) * tile
			cy := (float64(row) + 0.5) * tile
			h := tile / 2
			if col >= 2 {
				dc.DrawLine(cx, cy, cx, cy-h)
			}
			if col%2 == 1 {
				dc.DrawLine(cx, cy, cx-h, cy)
			}
			if row >= 2 {
				dc.DrawLine(cx, cy, cx, cy+h)
			}
			if row%2 == 1 {
				dc.DrawLine(cx, cy, cx+h, cy)
			}
			dc.Stroke()
			dc.DrawPoint(cx, cy, tile/8)
			dc.Fill()
		}
	}

	img := dc.Image()
	e.sheets[c] = img
	return img
}

// tileImage copies the region r of sheet into a new image anchored at 0,0.
func (e *PNGExporter) tileImage(sheet image.Image, r UVRect) image.Image {
	b := sheet.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	src := image.Rect(
		int(r.U*w), int(r.V*h),
		int((r.U+r.W)*w), int((r.V+r.H)*h),
	)
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Draw(dst, dst.Bounds(), sheet, src.Min, draw.Src)
	return dst
}

// Render paints g into a new drawing context.
func (e *PNGExporter) Render(g *circuit.Grid) (*gg.Context, error) {
	if e.CellPixels < 4 {
		return nil, fmt.Errorf("render: cell size %dpx too small", e.CellPixels)
	}
	if e.sheets == nil {
		e.sheets = make(map[core.Color]image.Image)
	}

	px := e.CellPixels
	tile := float64(px)
	dc := gg.NewContext(g.Width()*px, g.Height()*px)
	dc.SetColor(backgroundColor)
	dc.Clear()

	for _, cell := range g.Cells() {
		x := float64(cell.Coord().X) * tile
		y := float64(cell.Coord().Y) * tile

		if cell.Status() == circuit.StatusNotInSolution {
			dc.SetColor(rgba(e.Theme.NotInSolution))
			dc.DrawRectangle(x, y, tile, tile)
			dc.Fill()
		}
		dc.SetColor(gridLineColor)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, tile-1, tile-1)
		dc.Stroke()

		sheet := e.Sheet(e.Theme.StatusColor(cell.Status()))
		dc.DrawImage(e.tileImage(sheet, SpriteRegion(cell)), int(x), int(y))

		if cell.Status() == circuit.StatusPart {
			dc.SetColor(rgba(e.Theme.Part))
			dc.DrawRectangle(x+tile/3, y+tile/3, tile/3, tile/3)
			dc.Fill()
		}
		e.drawMarkers(dc, cell, x, y, tile)
	}

	if e.Labels {
		if err := e.drawLabels(dc, g, tile); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// drawMarkers paints pins as dots and blocked edges as bars.
func (e *PNGExporter) drawMarkers(dc *gg.Context, cell *circuit.Cell, x, y, tile float64) {
	for _, dir := range circuit.Directions {
		slot := cell.Connection(dir)
		if !slot.IsPin() && slot != circuit.ConnBlocked {
			continue
		}
		dx, dy := dir.Delta()
		mx := x + tile/2 + float64(dx)*(tile/2-tile/10)
		my := y + tile/2 + float64(dy)*(tile/2-tile/10)
		dc.SetColor(rgba(e.Theme.SlotColor(slot)))

		if slot == circuit.ConnBlocked {
			dc.SetLineWidth(tile / 8)
			if dx != 0 {
				dc.DrawLine(mx, y+tile/5, mx, y+tile-tile/5)
			} else {
				dc.DrawLine(x+tile/5, my, x+tile-tile/5, my)
			}
			dc.Stroke()
			continue
		}
		dc.DrawCircle(mx, my, tile/9)
		dc.Fill()
	}
}

func (e *PNGExporter) drawLabels(dc *gg.Context, g *circuit.Grid, tile float64) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    e.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.White)

	for _, cell := range g.Cells() {
		c := cell.Coord()
		dc.DrawStringAnchored(fmt.Sprintf("%d,%d", c.X, c.Y),
			float64(c.X)*tile+2, float64(c.Y)*tile+2, 0, 1)
	}
	return nil
}

// WritePNG encodes the board as PNG into w.
func (e *PNGExporter) WritePNG(w io.Writer, g *circuit.Grid) error {
	dc, err := e.Render(g)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the board as a PNG file.
func (e *PNGExporter) SavePNG(path string, g *circuit.Grid) error {
	dc, err := e.Render(g)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
