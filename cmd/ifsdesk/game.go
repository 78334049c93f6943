package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/internal/desk"
	"github.com/marben/revolving_ifs/render"
	"github.com/marben/revolving_ifs/widget"
)

var (
	windowColor = color.RGBA{0x30, 0x30, 0x30, 0xff}
	fieldColor  = color.RGBA{0x50, 0x50, 0x50, 0xff}
)

var arrowKeys = map[ebiten.Key]widget.Key{
	ebiten.KeyArrowLeft:  widget.KeyLeft,
	ebiten.KeyArrowRight: widget.KeyRight,
	ebiten.KeyArrowUp:    widget.KeyUp,
	ebiten.KeyArrowDown:  widget.KeyDown,
}

// Game implements the ebiten.Game interface.
type Game struct {
	layout desk.Layout

	eng   *engine.Engine
	alpha *widget.PointPicker
	theta *widget.AnglePicker

	plotCanvas  *imageCanvas
	alphaCanvas *imageCanvas
	thetaCanvas *imageCanvas

	edit      desk.LineEdit
	pressedIn desk.Region
	lastX     int
	lastY     int
	plotDirty bool
	runes     []rune
}

func newGame(cfg engine.Config, p revolving.Params, plotSize int) (*Game, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	eng.Reset(p)

	g := &Game{
		layout:      desk.NewLayout(plotSize, 300, 200),
		eng:         eng,
		plotCanvas:  newImageCanvas(plotSize, plotSize),
		alphaCanvas: newImageCanvas(300, 300),
		thetaCanvas: newImageCanvas(200, 200),
		plotDirty:   true,
	}

	alphaOpts := widget.DefaultPointPickerOptions()
	alphaOpts.Initial = eng.Params().Alpha
	alphaOpts.OnChange = func(revolving.Complex) { g.syncParams() }
	g.alpha = widget.NewPointPicker(g.alphaCanvas, alphaOpts)

	g.theta = widget.NewAnglePicker(g.thetaCanvas, widget.AnglePickerOptions{
		Initial:  eng.Params().N,
		OnChange: func(int) { g.syncParams() },
	})
	g.syncParams()
	return g, nil
}

func (g *Game) syncParams() {
	p := revolving.Params{Alpha: g.alpha.Point(), N: g.theta.Value()}
	if g.eng.SetParams(p) {
		g.plotDirty = true
	}
}

func (g *Game) Update() error {
	g.updateText()
	g.updatePointer()
	if !g.edit.Focused() {
		shift := ebiten.IsKeyPressed(ebiten.KeyShift)
		for k, wk := range arrowKeys {
			if inpututil.IsKeyJustPressed(k) {
				g.alpha.KeyDown(wk, shift)
			}
		}
	}

	g.alpha.Frame()
	if g.eng.Advance() {
		g.plotDirty = true
	}
	if g.plotDirty {
		render.Plot(g.plotCanvas, g.eng.State(), render.FormatEquations(g.eng.Params()))
		g.plotDirty = false
	}
	return nil
}

// updateText drives the alpha text field: Tab focuses it, Enter submits,
// Escape cancels.
func (g *Game) updateText() {
	switch {
	case !g.edit.Focused():
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			g.edit.Focus(g.alpha.Text())
			g.alpha.SetTextFocus(true)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.alpha.SubmitText(g.edit.Blur())
		g.alpha.SetTextFocus(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.edit.Blur()
		g.alpha.SetTextFocus(false)
	default:
		g.runes = ebiten.AppendInputChars(g.runes[:0])
		g.edit.Type(g.runes)
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.edit.Backspace()
		}
	}
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	now := time.Now()

	if _, wy := ebiten.Wheel(); wy != 0 && g.layout.Hit(x, y) == desk.RegionAlpha {
		// ebiten reports scrolling up as positive, DOM deltaY as negative
		g.alpha.Wheel(g.layout.Local(desk.RegionAlpha, x, y), -wy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressedIn = g.layout.Hit(x, y)
		switch g.pressedIn {
		case desk.RegionAlpha:
			g.alpha.PointerDown(g.layout.Local(desk.RegionAlpha, x, y), now)
		case desk.RegionTheta:
			g.theta.PointerDown(g.layout.Local(desk.RegionTheta, x, y))
		}
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && (x != g.lastX || y != g.lastY) {
		switch g.pressedIn {
		case desk.RegionAlpha:
			g.alpha.PointerMove(g.layout.Local(desk.RegionAlpha, x, y), now)
		case desk.RegionTheta:
			g.theta.PointerMove(g.layout.Local(desk.RegionTheta, x, y), true)
		}
	}
	g.lastX, g.lastY = x, y

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressedIn == desk.RegionAlpha {
			g.alpha.PointerUp(g.layout.Local(desk.RegionAlpha, x, y), now)
		}
		g.pressedIn = desk.RegionNone
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowColor)
	g.drawAt(screen, g.plotCanvas, g.layout.Plot.Min.X, g.layout.Plot.Min.Y)
	g.drawAt(screen, g.alphaCanvas, g.layout.Alpha.Min.X, g.layout.Alpha.Min.Y)
	g.drawAt(screen, g.thetaCanvas, g.layout.Theta.Min.X, g.layout.Theta.Min.Y)

	field := g.layout.Text
	vector.DrawFilledRect(screen, float32(field.Min.X), float32(field.Min.Y), float32(field.Dx()), float32(field.Dy()), fieldColor, false)
	label := "alpha = " + g.alpha.Text() + "   (Tab to edit)"
	if g.edit.Focused() {
		label = "alpha = " + g.edit.String() + "_"
	}
	ebitenutil.DebugPrintAt(screen, label, field.Min.X+4, field.Min.Y+2)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		g.layout.Theta.Max.X+10, g.layout.Theta.Min.Y)
}

func (g *Game) drawAt(screen *ebiten.Image, c *imageCanvas, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(c.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}
