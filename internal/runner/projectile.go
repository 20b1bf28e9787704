package runner

import "github.com/feliform/catdash/internal/core"

// Projectile is a shot fired from the actor. It flies straight right and is
// spent on the first obstacle it touches or when it leaves the world.
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64

	spent bool
}

// Rect returns the projectile's collision rectangle.
func (p *Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

func (p *Projectile) update() {
	p.X += p.Speed
}
