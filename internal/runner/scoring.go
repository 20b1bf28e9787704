package runner

import "github.com/feliform/catdash/internal/core"

// resolve applies one tick of collision and scoring rules, in order:
// actor vs obstacles (power-ups collected, first fatal hit ends the frame),
// projectiles vs obstacles, then pass scoring for obstacles cleared behind
// the actor.
func (g *Game) resolve() {
	hit := g.actor.Hitbox()

	for _, o := range g.spawner.Obstacles() {
		if o.destroyed || !hit.Intersects(o.Rect()) {
			continue
		}
		switch specFor(o.Type).behavior {
		case BehaviorGrantJump:
			g.actor.AddJumpCharge()
			g.collect(o)
		case BehaviorGrantShot:
			g.actor.AddShotCharge()
			g.collect(o)
		case BehaviorFatalAirborne:
			if !g.actor.OnGround() {
				g.kill()
				return
			}
		case BehaviorFatalUnlessSliding:
			if !g.actor.Sliding() {
				g.kill()
				return
			}
		default:
			g.kill()
			return
		}
	}

	for _, p := range g.projectiles {
		if p.spent {
			continue
		}
		for _, o := range g.spawner.Obstacles() {
			if o.destroyed || !p.Rect().Intersects(o.Rect()) {
				continue
			}
			p.spent = true
			o.destroyed = true
			cx, cy := o.Rect().Center()
			g.particles.ExplosionBurst(cx, cy)
			g.awardPass(o)
			break
		}
	}

	for _, o := range g.spawner.Obstacles() {
		if o.destroyed || o.Scored {
			continue
		}
		if o.Rect().Right() < hit.X {
			g.awardPass(o)
		}
	}
}

// collect consumes a power-up: sparkle burst, removed from play, and marked
// scored so it can never also award pass points.
func (g *Game) collect(o *Obstacle) {
	o.destroyed = true
	o.Scored = true
	cx, cy := o.Rect().Center()
	g.particles.RewardBurst(cx, cy)
}

// awardPass credits the obstacle's points exactly once. Bonus types extend
// the combo chain and earn an extra combo/2 on top once the chain is
// running; plain types break the chain. Power-ups award nothing.
func (g *Game) awardPass(o *Obstacle) {
	if o.Scored {
		return
	}
	o.Scored = true

	spec := specFor(o.Type)
	if o.Type.PowerUp() {
		return
	}

	pts := g.cfg.Scoring.BasePoints
	if spec.bonus {
		pts = g.cfg.Scoring.BonusPoints
		g.combo++
		if g.combo > g.maxCombo {
			g.maxCombo = g.combo
		}
		if g.combo > 1 {
			bonus := g.combo / 2
			pts += bonus
			g.events = append(g.events, core.Event{Kind: core.EventBonus, Value: bonus})
		}
		if g.combo >= g.cfg.Scoring.ComboCalloutAt {
			g.events = append(g.events, core.Event{Kind: core.EventComboCallout, Value: g.combo})
		}
	} else {
		g.combo = 0
	}
	g.addScore(pts)
}

// addScore bumps the score and emits a milestone event when the total
// crosses a milestone boundary.
func (g *Game) addScore(pts int) {
	if pts <= 0 {
		return
	}
	every := g.cfg.Scoring.MilestoneEvery
	old := g.score
	g.score += pts
	if every > 0 && old/every != g.score/every {
		g.events = append(g.events, core.Event{Kind: core.EventMilestone, Value: g.score})
	}
}

// kill ends the run. The actor starts its death fall, the game-over flag
// stops further simulation, and a new high score is detected here.
func (g *Game) kill() {
	g.actor.Die()
	g.gameOver = true
	g.events = append(g.events, core.Event{Kind: core.EventGameOver, Value: g.score})
	if g.score > g.highScore {
		g.highScore = g.score
		g.events = append(g.events, core.Event{Kind: core.EventNewHighScore, Value: g.score})
	}
}
