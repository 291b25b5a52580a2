package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/hyperview"
	"github.com/smasonuk/hyperview/viewer"
)

const dragSensitivity = 1.0 / 200.0

type Game struct {
	mesh   hyperview.Mesh
	scene  *viewer.Scene
	camera *viewer.Camera
	start  time.Time
	width  int
	height int
	stats  viewer.Stats

	lastX, lastY int
	dragging     bool
}

func NewGame(cfg hyperview.Config, mesh hyperview.Mesh) *Game {
	g := &Game{
		mesh:   mesh,
		scene:  viewer.NewScene(viewer.OptionsFromConfig(cfg.Render)),
		camera: viewer.NewCamera(6),
		start:  time.Now(),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	// the hypercube changes size as it turns
	frame := hyperview.Apply(g.scene, mesh, 0)
	min, max := frame.Extents()
	g.camera.Fit(min.Mul(1.5), max.Mul(1.5))
	g.camera.AddAngle(0.6, 0.4)

	return g
}

func (g *Game) Update() error {
	t := time.Since(g.start).Seconds()
	hyperview.Apply(g.scene, g.mesh, t)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-g.lastX) * dragSensitivity
		dy := float64(y-g.lastY) * dragSensitivity
		g.camera.AddAngle(-dx, dy)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.stats = g.scene.Paint(&screenPainter{screen: screen}, g.camera, g.width, g.height)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  FPS: %0.2f  faces: %d  lines: %d",
		g.mesh.Name(), ebiten.ActualFPS(), g.stats.Faces, g.stats.Lines))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
