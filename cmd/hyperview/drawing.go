package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// screenPainter draws viewer primitives onto an ebiten image.
type screenPainter struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (p *screenPainter) FillPolygon(xs, ys []float32, clr color.RGBA) {
	if len(xs) < 3 {
		return
	}

	p.indices = p.indices[:0]
	for i := 2; i < len(xs); i++ {
		p.indices = append(p.indices, 0, uint16(i-1), uint16(i))
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	// ebiten expects premultiplied alpha
	p.vertices = p.vertices[:0]
	for i := range xs {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   xs[i],
			DstY:   ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr * ca,
			ColorG: cg * ca,
			ColorB: cb * ca,
			ColorA: ca,
		})
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	p.screen.DrawTriangles(p.vertices, p.indices, solidSource(), op)
}

func (p *screenPainter) StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA) {
	vector.StrokeLine(p.screen, x0, y0, x1, y1, width, clr, true)
}
