package glyphfield

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires a Session to Ebitengine. It implements ebiten.Game.
type Game struct {
	session    *Session
	controller *Controller
	renderer   *Renderer
	banner     *EffectBanner
	surface    *ebitenSurface
	clock      Clock
	manual     *ManualClock // non-nil while a script drives the clock

	runner       *TestRunner
	exitWhenDone bool
	shots        Screenshots

	fps       *fpsWidget
	debug     bool
	debugLog  debugLogger
	cursorSet bool
	hidden    bool
}

// NewGame builds a Game from cfg, shaping text with font.
func NewGame(cfg *Config, font *Font) (*Game, error) {
	if font == nil {
		return nil, ErrNoFont
	}
	sc, err := cfg.SessionConfig()
	if err != nil {
		return nil, err
	}
	session, err := NewSession(font, sc)
	if err != nil {
		return nil, fmt.Errorf("glyphfield: initial point cloud: %w", err)
	}
	overlay, err := DefaultOverlayFont()
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:    session,
		controller: NewController(),
		renderer:   NewRenderer(),
		banner:     NewEffectBanner(cfg.Effects.BannerSeconds),
		surface:    &ebitenSurface{font: overlay},
		clock:      NewWallClock(),
		shots:      Screenshots{Dir: cfg.Debug.ScreenshotDir},
		debug:      cfg.Debug.Enabled,
	}
	g.controller.OnEffectChange = func(e Effect) {
		g.banner.Show(e.Name)
		Logger().Info("effect changed", "effect", e.Name)
	}
	if cfg.Window.ShowFPS {
		g.fps = &fpsWidget{}
	}
	return g, nil
}

// Session returns the game's session.
func (g *Game) Session() *Session { return g.session }

// Controller returns the input controller, for injecting synthetic input.
func (g *Game) Controller() *Controller { return g.controller }

// Screenshot queues a labeled capture of the next drawn frame.
func (g *Game) Screenshot(label string) { g.shots.Queue(label) }

// SetTestRunner attaches a scripted input runner. While it runs the clock
// advances by exactly one tick per Update so captures are reproducible. When
// exitWhenDone is set the game terminates once the script has finished and
// every queued screenshot has been written.
func (g *Game) SetTestRunner(r *TestRunner, exitWhenDone bool) {
	g.runner = r
	g.exitWhenDone = exitWhenDone
	if r != nil {
		g.manual = &ManualClock{}
		g.clock = g.manual
	}
}

// Update advances input, scripted steps and animations by one tick.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	if g.manual != nil {
		g.manual.Advance(dt * 1000)
	}

	if g.runner != nil {
		if g.runner.Done() && g.exitWhenDone && len(g.shots.Pending()) == 0 {
			return ebiten.Termination
		}
		g.runner.step(g.controller, &g.shots)
	}
	g.controller.Update(g.session)
	g.banner.Update(float32(dt))
	g.updateCursor()
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// updateCursor hides the system cursor while the interactive region is in
// view, since a cursor dot is drawn in its place.
func (g *Game) updateCursor() {
	hide := g.session.Viewport.Active()
	if g.cursorSet && hide == g.hidden {
		return
	}
	if hide {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.hidden = hide
	g.cursorSet = true
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	frame := Frame{Pointer: g.controller.Pointer(), NowMs: g.clock.NowMs()}
	g.renderer.Draw(g.surface, g.session, g.banner, frame)
	if g.fps != nil && g.session.Viewport.Active() {
		g.fps.draw(screen)
	}
	if g.debug {
		g.debugLog.log(time.Now(), g.renderer.stats, g.session)
	}
	g.shots.flush(screen)
}

// Layout keeps the logical screen equal to the window. A size change
// regenerates the point cloud for the new canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		if err := g.session.Resize(outsideWidth, outsideHeight); err != nil {
			Logger().Error("resize failed", "width", outsideWidth, "height", outsideHeight, "error", err)
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens a window configured by cfg and runs g until the window closes
// or a finished script terminates it.
func Run(g *Game, cfg WindowConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	Logger().Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("glyphfield: %w", err)
	}
	return nil
}
