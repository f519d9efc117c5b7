package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fixsolve/fixsolve/arena"
)

// WritePng rasterises a's nodes on concentric rings ordered by priority
// (the same RelevanceOf the valuation algorithm itself ranks nodes by),
// one node per angular slot within its ring, labelling each with the
// same text the DOT export uses (sentinel name, or node id plus basis and
// variable for a Player 0 position), and writes the PNG to w.
func WritePng(cfg Config, a *arena.Arena, w io.Writer) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2

	ringed := make(map[int][]arena.NodeID)
	var rings []int
	for n := arena.NodeID(0); int(n) < a.NodeCount(); n++ {
		p := a.RelevanceOf(n).Priority
		if _, ok := ringed[p]; !ok {
			rings = append(rings, p)
		}
		ringed[p] = append(ringed[p], n)
	}
	sort.Ints(rings)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(cfg.FontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)

	for ringIndex, priority := range rings {
		radius := float64(ringIndex+1) * cfg.RingSpacing
		nodes := ringed[priority]

		for i, n := range nodes {
			angle := 2 * math.Pi * float64(i) / float64(len(nodes))
			x := cx + radius*math.Cos(angle)
			y := cy + radius*math.Sin(angle)

			drawNode(img, winStateOf(a, n), x, y)

			pt := freetype.Pt(int(x)+6, int(y)-6)
			if _, err := c.DrawString(nodeLabel(a, n), pt); err != nil {
				return err
			}
		}
	}

	return png.Encode(w, img)
}

func drawNode(img *image.RGBA, w arena.WinState, x, y float64) {
	col := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	switch w {
	case arena.Win0:
		col = color.RGBA{G: 140, A: 255}
	case arena.Win1:
		col = color.RGBA{R: 178, A: 255}
	}

	const r = 5
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			img.Set(int(x)+dx, int(y)+dy, col)
		}
	}
}
