package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixels per world unit
	pixelsPerUnit = 80
)

var (
	colorSolid   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	colorPlayer  = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	colorCrouch  = color.RGBA{R: 60, G: 140, B: 90, A: 255}
	colorBoss    = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colorLimb    = color.RGBA{R: 240, G: 120, B: 80, A: 255}
	colorItem    = color.RGBA{R: 240, G: 220, B: 80, A: 255}
	colorPlaced  = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	colorLineDbg = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

// Game is the windowed driver: ebiten calls Update at the configured TPS and
// Draw as often as it can.
type Game struct {
	runner *runner
	dt     float64
	frames int
}

func newGame(r *runner, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{runner: r, dt: 1.0 / float64(tps)}
}

func (g *Game) Update() error {
	g.frames++
	g.runner.tick(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.runner.session
	cfg := s.Config()
	w := s.World()

	drawArena(screen, cfg.Arena)

	ecs.ForEach2(w, component.ItemComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, it *component.Item, t *component.Transform) {
		clr := colorItem
		if it.State == component.ItemPlaced {
			clr = colorPlaced
		}
		x, y := toScreen(t.Pos())
		vector.FillCircle(screen, x, y, float32(cfg.Items.Radius*pixelsPerUnit), clr, true)
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		clr := colorPlayer
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok && l.Layer == component.LayerPlayerThroughPlatform {
			clr = colorCrouch
		}
		fillBox(screen, t.Pos(), cfg.Player.Width, cfg.Player.Height, clr)
		x, y := toScreen(t.Pos())
		label := fmt.Sprintf("P%d", p.ID)
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			label = fmt.Sprintf("P%d %d/%d", p.ID, h.Current, h.Max)
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)-16, int(y)-int(cfg.Player.Height*pixelsPerUnit))
	})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		fillBox(screen, t.Pos(), cfg.Boss.Width, cfg.Boss.Height, colorBoss)
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			x, y := toScreen(t.Pos())
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("boss %d/%d  next %.1fs", h.Current, h.Max, b.Cooldown), int(x)-40, int(y)-8)
		}
	})

	ecs.ForEach2(w, component.LimbComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, l *component.Limb, t *component.Transform) {
		r := cfg.Boss.Left.Radius
		if l.Side == component.LimbRight {
			r = cfg.Boss.Right.Radius
		}
		x, y := toScreen(t.Pos())
		vector.FillCircle(screen, x, y, float32(r*pixelsPerUnit), colorLimb, true)
	})

	if cfg.Session.Debug {
		_, y := toScreen(common.V(0, cfg.Arena.PlatformLine))
		vector.StrokeLine(screen, 0, y, baseWidth, y, 1, colorLineDbg, false)
	}

	status := "press interact to start"
	if s.Running() {
		status = fmt.Sprintf("running  roster %v  items %d/%d", s.Roster(), s.Ledger().Live(), s.Ledger().Cap())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  %s\n%s", ebiten.ActualFPS(), status, g.runner.hud.String()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func drawArena(screen *ebiten.Image, arena prefabs.ArenaSpec) {
	rect := func(r prefabs.RectSpec) {
		fillBox(screen, common.V(r.X, r.Y), r.Width, r.Height, colorSolid)
	}
	rect(arena.Floor)
	for _, w := range arena.Walls {
		rect(w)
	}
	for _, p := range arena.Platforms {
		rect(p)
	}
}

func fillBox(screen *ebiten.Image, center common.Vec2, width, height float64, clr color.Color) {
	x, y := toScreen(common.V(center.X-width/2, center.Y+height/2))
	vector.FillRect(screen, x, y, float32(width*pixelsPerUnit), float32(height*pixelsPerUnit), clr, false)
}

// toScreen maps world units (origin at the arena center, y up) to pixels.
func toScreen(p common.Vec2) (float32, float32) {
	return float32(baseWidth/2 + p.X*pixelsPerUnit), float32(baseHeight/2 - p.Y*pixelsPerUnit)
}
