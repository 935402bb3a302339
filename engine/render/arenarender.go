package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/wave-arena/engine/core"
)

var (
	BackgroundColor = color.RGBA{24, 24, 28, 255}
	ObstacleColor   = color.RGBA{128, 128, 128, 255} // gray
	HeroColor       = color.RGBA{0, 0, 255, 255}     // blue
	HazardColor     = color.RGBA{139, 69, 19, 255}   // brown
	HealthBackColor = color.RGBA{255, 0, 0, 255}
	HealthFillColor = color.RGBA{0, 128, 0, 255}
	PhantomOutline  = color.RGBA{255, 0, 255, 128}
)

// EnemyColors maps enemy kinds to their body colour
var EnemyColors = map[core.EnemyKind]color.RGBA{
	core.EnemyBasic:   {0, 128, 0, 255},     // green
	core.EnemyBrute:   {255, 0, 0, 255},     // red
	core.EnemyRunner:  {0, 0, 255, 255},     // blue
	core.EnemyGiant:   {255, 255, 0, 255},   // yellow
	core.EnemyPhantom: {128, 0, 128, 255},   // purple
}

// PickupColors maps pickup items to their marker colour
var PickupColors = map[core.ItemType]color.RGBA{
	core.ItemBarrel:         {139, 69, 19, 255}, // brown
	core.ItemMachineGunAmmo: {0, 0, 255, 255},   // blue
	core.ItemPhantomAmmo:    {128, 0, 128, 255}, // purple
	core.ItemMinigunAmmo:    {0, 128, 0, 255},   // green
}

// ProjectileColor returns purple for phantom rounds, red otherwise
func ProjectileColor(p *core.Projectile) color.RGBA {
	if p.Phantom {
		return color.RGBA{128, 0, 128, 255}
	}
	return color.RGBA{255, 0, 0, 255}
}

// ParticleColors maps particle tints to colours
var ParticleColors = map[core.ParticleColor]color.RGBA{
	core.ParticleRed:    {255, 0, 0, 255},
	core.ParticleOrange: {255, 165, 0, 255},
}

const (
	projectileRadius = 5
	pickupRadius     = 10
	particleRadius   = 3
	healthBarWidth   = 40
	healthBarHeight  = 5
)

// HealthBarFill returns the filled width of the hero's health bar
func HealthBarFill(health float64) float32 {
	f := float32(health / core.HeroStartHealth * healthBarWidth)
	if f < 0 {
		return 0
	}
	return f
}

// ArenaRenderer draws the simulation state. It only reads the world.
type ArenaRenderer struct {
	Camera *Camera

	whiteImg *ebiten.Image
	canvas   *ebiten.Image
}

// NewArenaRenderer creates a renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{Camera: NewCamera()}
}

// Draw renders the arena, shifted by the camera shake when there is any
func (r *ArenaRenderer) Draw(screen *ebiten.Image, w *core.World) {
	ox, oy := r.Camera.Offset()
	if ox == 0 && oy == 0 {
		r.drawWorld(screen, w)
		return
	}

	b := screen.Bounds()
	if r.canvas == nil || r.canvas.Bounds() != b {
		r.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	r.drawWorld(r.canvas, w)

	screen.Fill(BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(r.canvas, op)
}

// drawWorld renders every entity in back-to-front order
func (r *ArenaRenderer) drawWorld(screen *ebiten.Image, w *core.World) {
	screen.Fill(BackgroundColor)

	for _, o := range w.Arena.Obstacles() {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), ObstacleColor, false)
	}
	for _, p := range w.Pickups {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), pickupRadius, PickupColors[p.Item], true)
	}
	for _, hz := range w.Hazards {
		vector.DrawFilledRect(screen, float32(hz.X-10), float32(hz.Y-10), 20, 20, HazardColor, false)
	}
	for _, p := range w.Hero.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), projectileRadius, ProjectileColor(p), true)
	}
	r.drawEnemies(screen, w)
	r.drawHero(screen, w.Hero)
	for _, p := range w.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), particleRadius, ParticleColors[p.Color], true)
	}
}

func (r *ArenaRenderer) drawEnemies(screen *ebiten.Image, w *core.World) {
	for _, e := range w.Enemies {
		size := e.Kind.Stats().Size
		r.fillRotatedRect(screen, e.X, e.Y, size, size, e.Facing, EnemyColors[e.Kind])
		if e.Kind == core.EnemyPhantom {
			h := float32(size / 2)
			vector.StrokeRect(screen, float32(e.X)-h, float32(e.Y)-h, 2*h, 2*h, 1, PhantomOutline, false)
		}
	}
}

func (r *ArenaRenderer) drawHero(screen *ebiten.Image, h *core.Hero) {
	// the sprite's long axis points along the facing
	r.fillRotatedRect(screen, h.X, h.Y, core.HeroWidth, core.HeroHeight, h.Facing-math.Pi/2, HeroColor)

	bx := float32(h.X - healthBarWidth/2)
	by := float32(h.Y - 30)
	vector.DrawFilledRect(screen, bx, by, healthBarWidth, healthBarHeight, HealthBackColor, false)
	vector.DrawFilledRect(screen, bx, by, HealthBarFill(h.Health), healthBarHeight, HealthFillColor, false)
}

// fillRotatedRect fills a w×h rectangle centred on (cx, cy) rotated by angle
func (r *ArenaRenderer) fillRotatedRect(dst *ebiten.Image, cx, cy, w, h, angle float64, clr color.RGBA) {
	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(3, 3)
		r.whiteImg.Fill(color.White)
	}

	sin, cos := math.Sincos(angle)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
	}

	var path vector.Path
	path.MoveTo(corner(-w/2, -h/2))
	path.LineTo(corner(w/2, -h/2))
	path.LineTo(corner(w/2, h/2))
	path.LineTo(corner(-w/2, h/2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, r.whiteImg, nil)
}
