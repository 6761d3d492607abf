package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-cosmos/internal/scene"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone     LabelMode = iota // No labels
	LabelSelected                  // Only the selected body
	LabelAll                       // All bodies
)

func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelSelected:
		return "selected"
	case LabelAll:
		return "all"
	default:
		return "unknown"
	}
}

// Glyphs
const (
	glyphEmpty       = ' '
	glyphRing        = '·'
	glyphSun         = '☉'
	glyphMilkyWay    = '◎'
	glyphPlanet      = '•'
	glyphPlanetSel   = '●'
	glyphStar        = '∗'
	glyphStarSel     = '✦'
	glyphGalaxy      = '○'
	glyphGalaxySel   = '◉'
	glyphSelectArrow = '◄'
)

// Colors
const (
	colorRing    = "240"
	colorZodiac  = "60"
	colorArm     = "54"
	colorLabel   = "249"
	colorFocus   = "229"
	colorDefault = "252"
	colorGalaxy  = "141"
)

// namedColors maps the catalog's CSS color names to terminal colors.
var namedColors = map[string]string{
	"yellow":    "#FFD700",
	"grey":      "#A0A0A0",
	"gray":      "#A0A0A0",
	"orange":    "#FFA500",
	"green":     "#3CB371",
	"red":       "#E0503C",
	"brown":     "#B5651D",
	"tan":       "#D2B48C",
	"lightblue": "#ADD8E6",
	"blue":      "#4169E1",
	"purple":    "#9370DB",
	"white":     "#FFFFFF",
}

// terminalColor resolves a scene color to something lipgloss understands.
// Hex values and ANSI codes pass through.
func terminalColor(c string) string {
	if c == "" {
		return colorDefault
	}
	if hex, ok := namedColors[strings.ToLower(c)]; ok {
		return hex
	}
	return c
}

type cell struct {
	ch    rune
	color string
}

// canvas is a character grid onto which the 600x600 scene plane is mapped.
// Terminal cells are about twice as tall as wide, so one row covers two
// columns worth of scene pixels.
type canvas struct {
	w, h  int
	cells [][]cell

	side      float64 // width of the scene square in columns
	originX   float64 // column of scene x=0
	originY   float64 // row of scene y=0
	labelMode LabelMode
	positions []bodyPos
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y     int
	name     string
	selected bool
}

func newCanvas(w, h int, labels LabelMode) *canvas {
	c := &canvas{w: w, h: h, labelMode: labels}
	c.cells = make([][]cell, h)
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: glyphEmpty}
		}
	}
	c.side = math.Min(float64(w), float64(h)*2)
	c.originX = (float64(w) - c.side) / 2
	c.originY = (float64(h) - c.side/2) / 2
	return c
}

// project maps scene pixels to a cell. ok is false off the grid.
func (c *canvas) project(x, y float64) (col, row int, ok bool) {
	fx := c.originX + x/scene.CanvasSize*c.side
	fy := c.originY + y/scene.CanvasSize*c.side/2
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	col, row = int(math.Floor(fx)), int(math.Floor(fy))
	return col, row, col >= 0 && col < c.w && row >= 0 && row < c.h
}

// cols converts a scene length to columns.
func (c *canvas) cols(length float64) float64 {
	return length / scene.CanvasSize * c.side
}

func (c *canvas) set(col, row int, ch rune, color string) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.cells[row][col] = cell{ch: ch, color: color}
}

func (c *canvas) empty(col, row int) bool {
	return col >= 0 && col < c.w && row >= 0 && row < c.h && c.cells[row][col].ch == glyphEmpty
}

// drawCircle traces a ring of scene radius r around (cx, cy) on empty
// cells only.
func (c *canvas) drawCircle(cx, cy, r float64, ch rune, color string) {
	rc := c.cols(r)
	if rc < 1 {
		return
	}

	steps := int(2 * math.Pi * rc)
	if steps < 8 {
		steps = 8
	}
	if steps > 720 {
		steps = 720
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		col, row, ok := c.project(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
		if ok && c.empty(col, row) {
			c.set(col, row, ch, color)
		}
	}
}

// text writes s starting at (col, row) over empty or ring cells.
func (c *canvas) text(col, row int, s, color string) {
	if row < 0 || row >= c.h {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= c.w {
			break
		}
		if ch := c.cells[row][x].ch; ch == glyphEmpty || ch == glyphRing {
			c.cells[row][x] = cell{ch: r, color: color}
		}
	}
}

func (c *canvas) plot(b scene.Body, ch rune, color string) {
	col, row, ok := c.project(b.X, b.Y)
	if !ok {
		return
	}
	if b.Selected {
		color = colorFocus
	}
	c.set(col, row, ch, color)
	c.positions = append(c.positions, bodyPos{x: col, y: row, name: b.Name, selected: b.Selected})
}

// draw renders any scene kind onto the canvas.
func (c *canvas) draw(s scene.Scene) {
	switch s := s.(type) {
	case *scene.SolarSystemScene:
		c.drawSolarSystem(s)
	case *scene.LocalStarsScene:
		c.drawLocalStars(s)
	case *scene.LocalGroupScene:
		c.drawLocalGroup(s)
	}
	c.renderLabels()
}

func (c *canvas) drawSolarSystem(s *scene.SolarSystemScene) {
	for _, o := range s.Orbits {
		c.drawCircle(s.Sun.X, s.Sun.Y, o.Radius, glyphRing, colorRing)
	}

	if s.Zodiac.Show && s.Zodiac.Radius > 0 {
		c.drawCircle(s.Sun.X, s.Sun.Y, s.Zodiac.Radius, glyphRing, colorZodiac)
		for _, sign := range s.Zodiac.Signs {
			// Sign names sit in the middle of their 30° sector.
			a := float64(sign.StartDeg+15) * math.Pi / 180
			x := s.Sun.X + s.Zodiac.Radius*math.Cos(a)
			y := s.Sun.Y - s.Zodiac.Radius*math.Sin(a)
			if col, row, ok := c.project(x, y); ok {
				c.text(col-1, row, abbreviate(sign.Name, 3), colorZodiac)
			}
		}
	}

	for _, b := range scene.Bodies(s)[1:] {
		ch := glyphPlanet
		if b.Selected {
			ch = glyphPlanetSel
		}
		c.plot(b, ch, terminalColor(b.Color))
	}

	// Sun last so it's always visible
	c.plot(markerBody(s.Sun), glyphSun, terminalColor(s.Sun.Color))
}

func (c *canvas) drawLocalStars(s *scene.LocalStarsScene) {
	for _, arm := range s.SpiralArms {
		c.drawCircle(s.Sun.X, s.Sun.Y, s.RadiusAt(arm.DistanceLY), glyphRing, colorArm)
	}
	for _, b := range scene.Bodies(s)[1:] {
		ch := glyphStar
		if b.Selected {
			ch = glyphStarSel
		}
		c.plot(b, ch, terminalColor(b.Color))
	}
	c.plot(markerBody(s.Sun), glyphSun, terminalColor(s.Sun.Color))
}

func (c *canvas) drawLocalGroup(s *scene.LocalGroupScene) {
	for _, b := range scene.Bodies(s)[1:] {
		ch := glyphGalaxy
		if b.Selected {
			ch = glyphGalaxySel
		}
		c.plot(b, ch, colorGalaxy)
	}
	c.plot(markerBody(s.MilkyWay), glyphMilkyWay, colorDefault)
}

func markerBody(m scene.Marker) scene.Body {
	return scene.Body{Name: m.Name, X: m.X, Y: m.Y, Radius: m.Radius, Color: m.Color, Selected: m.Selected}
}

// renderLabels draws body labels based on label mode. Selected bodies go
// first so they win overlaps.
func (c *canvas) renderLabels() {
	if c.labelMode == LabelNone || len(c.positions) == 0 {
		return
	}

	ordered := make([]bodyPos, 0, len(c.positions))
	for _, p := range c.positions {
		if p.selected {
			ordered = append(ordered, p)
		}
	}
	for _, p := range c.positions {
		if !p.selected && c.labelMode == LabelAll {
			ordered = append(ordered, p)
		}
	}

	for _, p := range ordered {
		label, color := p.name, colorLabel
		if p.selected {
			label = string(glyphSelectArrow) + " " + p.name
			color = colorFocus
		}
		c.text(p.x+2, p.y, label, color)
	}
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// String renders the grid with colors, one style per distinct color.
func (c *canvas) String() string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder

	for y, row := range c.cells {
		for _, cl := range row {
			if cl.ch == glyphEmpty {
				b.WriteRune(cl.ch)
				continue
			}
			st, ok := styles[cl.color]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(terminalColor(cl.color)))
				styles[cl.color] = st
			}
			b.WriteString(st.Render(string(cl.ch)))
		}
		if y < len(c.cells)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// plain returns the grid without styling, for tests.
func (c *canvas) plain() string {
	var b strings.Builder
	for y, row := range c.cells {
		for _, cl := range row {
			b.WriteRune(cl.ch)
		}
		if y < len(c.cells)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
