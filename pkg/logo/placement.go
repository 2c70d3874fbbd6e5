package logo

import "fmt"

// Margin is the share of the canvas an oversized logo is shrunk into.
const Margin = 0.8

// Placement is where the logo lands on the canvas, after any downscaling.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
	Scaled bool
	Scale  float64
}

func (p Placement) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", p.Width, p.Height, p.X, p.Y)
}

// Place fits a srcW x srcH logo onto a canvas of width x height. Logos that
// already fit keep their native size, larger ones are shrunk uniformly to
// Margin of the tightest side. Offsets are floored.
func Place(srcW, srcH, width, height int) Placement {
	p := Placement{Width: srcW, Height: srcH, Scale: 1}

	if srcW > width || srcH > height {
		scale := min(float64(width)/float64(srcW), float64(height)/float64(srcH)) * Margin
		p.Width = atLeastOne(int(float64(srcW) * scale))
		p.Height = atLeastOne(int(float64(srcH) * scale))
		p.Scaled = true
		p.Scale = scale
	}

	p.X = (width - p.Width) / 2
	p.Y = (height - p.Height) / 2
	return p
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
