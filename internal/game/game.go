// Package game is the ebiten shell around the wireframe renderer: it owns
// the animation clock, polls input, and backs the renderer's line draws with
// the screen.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/dodeca-viz/internal/config"
	"github.com/iburimskiy/dodeca-viz/internal/render"
)

type Game struct {
	renderer *render.Renderer

	// clock is seconds of animation time, advanced once per tick and
	// frozen while paused. The renderer only ever reads it.
	clock  float64
	paused bool

	stats    *frameStats
	lastTick time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New() *Game {
	return &Game{
		renderer: render.New(),
		stats:    newFrameStats(120),
		prevKey:  map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if !g.paused {
		g.clock += config.ClockStep
	}

	now := time.Now()
	if !g.lastTick.IsZero() {
		g.stats.record(now.Sub(g.lastTick).Seconds())
	}
	g.lastTick = now

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.renderer.Frame(g.clock, config.WindowWidth, config.WindowHeight,
		func(x0, y0, x1, y1 float64, c color.RGBA) {
			vector.StrokeLine(screen,
				float32(x0), float32(y0), float32(x1), float32(y1),
				config.LineWidth, c, false)
		})

	status := "Spinning - Space to pause, Esc/Q to quit"
	if g.paused {
		status = "Paused - Space to resume, Esc/Q to quit"
	}
	if fps := g.stats.averageFPS(); fps > 0 {
		status += fmt.Sprintf(" | %.0f fps", fps)
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
