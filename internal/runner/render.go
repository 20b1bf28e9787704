package runner

import (
	"fmt"
	"unicode/utf8"

	"github.com/feliform/catdash/internal/config"
	"github.com/feliform/catdash/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GroundChar     = '═'
	CatHead        = '◆'
	CatBody        = '█'
	CatLeg1        = '╱'
	CatLeg2        = '╲'
	CatDeadEye     = 'x'
	StoneChar      = '▓'
	CactusChar     = '▒'
	BushChar       = '░'
	BalloonChar    = '●'
	BalloonString  = '│'
	BirdChar       = '»'
	FeatherChar    = '❯'
	StarChar       = '✦'
	ProjectileChar = '─'
	ParticleBig    = '•'
	ParticleSmall  = '·'
)

// theme is a cosmetic palette. Swapping themes recolors the scene but never
// changes gameplay.
type theme struct {
	name   string
	ground core.Color
	sky    core.Color
	actor  core.Color
}

var themes = [themeCount]theme{
	{name: "meadow", ground: core.ColorGreen, sky: core.ColorCyan, actor: core.ColorYellow},
	{name: "dusk", ground: core.ColorMagenta, sky: core.ColorBlue, actor: core.ColorBrightYellow},
	{name: "desert", ground: core.ColorYellow, sky: core.ColorBrightCyan, actor: core.ColorWhite},
	{name: "night", ground: core.ColorGray, sky: core.ColorBrightBlue, actor: core.ColorBrightWhite},
}

// ThemeName returns the display name for a theme index.
func ThemeName(i int) string {
	return themes[((i%themeCount)+themeCount)%themeCount].name
}

// powerUpPalette is cycled by each power-up's palette index for a shimmer
// effect. Length must match paletteSize.
var powerUpPalette = [paletteSize]core.Color{
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorBrightWhite,
}

// obstacleStyles maps each type to its glyph and base color.
var obstacleStyles = [obstacleTypeCount]struct {
	ch    rune
	color core.Color
}{
	ObstacleStone:   {StoneChar, core.ColorGray},
	ObstacleCactus:  {CactusChar, core.ColorGreen},
	ObstacleBush:    {BushChar, core.ColorBrightGreen},
	ObstacleBalloon: {BalloonChar, core.ColorBrightRed},
	ObstacleBird:    {BirdChar, core.ColorBrightBlue},
	ObstacleFeather: {FeatherChar, core.ColorBrightWhite},
	ObstacleStar:    {StarChar, core.ColorBrightYellow},
}

// Render draws the current frame. It delegates to Draw so the drawing path
// is a pure function of the snapshot.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot(), g.cfg.World)
}

// Draw renders a snapshot onto the screen. It holds no state: the same
// snapshot and world always produce the same cells.
func Draw(dst *core.Screen, snap Snapshot, world config.WorldConfig) {
	dst.Clear()

	p := newProjector(dst, world)
	th := themes[snap.Theme%themeCount]

	groundY := p.cellY(world.GroundLevel)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, groundY, GroundChar, th.ground)
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, p, o)
	}
	for _, pr := range snap.Projectiles {
		dst.SetColored(p.cellX(pr.X), p.cellY(pr.Y+pr.H/2), ProjectileChar, core.ColorBrightYellow)
	}
	for _, pt := range snap.Particles {
		drawParticle(dst, p, pt)
	}

	drawActor(dst, p, snap.Actor, th)
	drawHUD(dst, snap, th)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// projector maps world units onto screen cells.
type projector struct {
	sx, sy float64
}

func newProjector(dst *core.Screen, world config.WorldConfig) projector {
	return projector{
		sx: float64(dst.Width()) / world.Width,
		sy: float64(dst.Height()) / world.Height,
	}
}

func (p projector) cellX(x float64) int { return int(x * p.sx) }
func (p projector) cellY(y float64) int { return int(y * p.sy) }

func drawObstacle(dst *core.Screen, p projector, o ObstacleSnapshot) {
	style := obstacleStyles[ObstacleStone]
	if o.Type >= 0 && o.Type < obstacleTypeCount {
		style = obstacleStyles[o.Type]
	}
	color := style.color
	if o.Type.PowerUp() {
		color = powerUpPalette[o.PaletteIndex%paletteSize]
	}

	x0, x1 := p.cellX(o.X), p.cellX(o.X+o.W)
	y0, y1 := p.cellY(o.Y), p.cellY(o.Y+o.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, style.ch, color)
		}
	}

	// Balloons get a string dangling under the envelope.
	if o.Type == ObstacleBalloon {
		cx := (x0 + x1) / 2
		dst.SetColored(cx, y1, BalloonString, core.ColorWhite)
	}
}

func drawParticle(dst *core.Screen, p projector, pt ParticleSnapshot) {
	ch := ParticleSmall
	if pt.Size >= 4 {
		ch = ParticleBig
	}
	color := nearestColor(pt.Color)
	if pt.Alpha < 0.33 {
		color = core.ColorGray
	}
	dst.SetColored(p.cellX(pt.X), p.cellY(pt.Y), ch, color)
}

// nearestColor buckets an RGB sample into the terminal palette by dominant
// channel.
func nearestColor(c RGB) core.Color {
	switch {
	case c.R > 200 && c.G > 200 && c.B > 200:
		return core.ColorBrightWhite
	case c.R > 200 && c.G > 160:
		return core.ColorBrightYellow
	case c.R > 180:
		return core.ColorBrightRed
	case c.G > 160:
		return core.ColorBrightGreen
	case c.B > 160:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

func drawActor(dst *core.Screen, p projector, a ActorSnapshot, th theme) {
	x := p.cellX(a.Hitbox.X)
	top := p.cellY(a.Hitbox.Y)
	bottom := p.cellY(a.Hitbox.Bottom())
	if bottom <= top {
		bottom = top + 1
	}

	if a.Sliding {
		// Flat two-cell silhouette hugging the ground.
		dst.SetColored(x, bottom-1, CatBody, th.actor)
		dst.SetColored(x+1, bottom-1, CatBody, th.actor)
		dst.SetColored(x+2, bottom-1, CatHead, th.actor)
		return
	}

	head := CatHead
	if a.State == StateDead {
		head = CatDeadEye
	}
	dst.SetColored(x+1, top, head, th.actor)
	dst.SetColored(x+2, top, CatBody, th.actor)

	for y := top + 1; y < bottom-1; y++ {
		dst.SetColored(x, y, CatBody, th.actor)
		dst.SetColored(x+1, y, CatBody, th.actor)
		dst.SetColored(x+2, y, CatBody, th.actor)
	}

	// Legs alternate on the run cycle; tucked while airborne.
	legY := bottom - 1
	switch {
	case a.State == StateDead:
		dst.SetColored(x+1, legY, CatLeg1, th.actor)
	case !a.OnGround:
		dst.SetColored(x, legY, CatLeg1, th.actor)
		dst.SetColored(x+1, legY, CatLeg2, th.actor)
	case a.Frame%2 == 0:
		dst.SetColored(x, legY, CatLeg1, th.actor)
		dst.SetColored(x+2, legY, CatLeg2, th.actor)
	default:
		dst.SetColored(x+1, legY, CatLeg1, th.actor)
		dst.SetColored(x+2, legY, CatLeg2, th.actor)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, th theme) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	if snap.HighScore > 0 {
		dst.DrawText(2, 1, fmt.Sprintf(" Hi: %d ", snap.HighScore))
	}

	right := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawText(dst.Width()-len(right)-2, 0, right)

	if snap.Combo > 1 {
		combo := fmt.Sprintf(" Combo x%d ", snap.Combo)
		dst.DrawTextColored((dst.Width()-len(combo))/2, 0, combo, core.ColorBrightYellow)
	}

	charges := ""
	if snap.Actor.JumpCharges > 0 {
		charges += fmt.Sprintf(" ⇡%d", snap.Actor.JumpCharges)
	}
	if snap.Actor.ShotCharges > 0 {
		charges += fmt.Sprintf(" ✦%d", snap.Actor.ShotCharges)
	}
	if charges != "" {
		// The charge glyphs are multibyte, so count runes for placement.
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(charges)-2, 1, charges, th.sky)
	}
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
