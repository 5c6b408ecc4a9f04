package render

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/jwhan/biaslens/internal/model"
)

const (
	cellWidth  = 170.0
	cellHeight = 34.0
	tableCols  = 2
)

// KappaTablePNG renders the kappa summary as a small table image, the
// shareable artifact reviewers attach to write-ups. Uses a bitmap font so
// rendering works headless without any font files installed.
func KappaTablePNG(path string, results []model.KappaResult) error {
	rows := len(results) + 1 // header row
	width := int(cellWidth*tableCols) + 1
	height := int(cellHeight*float64(rows)) + 1

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// Grid.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for r := 0; r <= rows; r++ {
		y := float64(r) * cellHeight
		dc.DrawLine(0, y, float64(width), y)
	}
	for c := 0; c <= tableCols; c++ {
		x := float64(c) * cellWidth
		dc.DrawLine(x, 0, x, float64(height))
	}
	dc.Stroke()

	drawCell := func(row, col int, text string) {
		x := float64(col)*cellWidth + cellWidth/2
		y := float64(row)*cellHeight + cellHeight/2
		dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	}

	drawCell(0, 0, "Metric")
	drawCell(0, 1, "Fleiss kappa")
	for i, r := range results {
		drawCell(i+1, 0, Title(r.Dimension))
		if r.Available {
			drawCell(i+1, 1, fmt.Sprintf("%.3f", r.Kappa))
		} else {
			drawCell(i+1, 1, "N/A")
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save table image %s: %w", path, err)
	}
	return nil
}
