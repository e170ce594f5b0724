package glyphfield

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// scrollStep is the page scroll distance, in pixels, per wheel notch.
const scrollStep = 40

// KeyKind identifies a discrete input event.
type KeyKind uint8

const (
	KeyChar        KeyKind = iota // a printable rune was typed
	KeyCycle                      // ENTER: next effect
	KeyDelete                     // BACKSPACE: remove the last rune
	KeyDensityUp                  // UP: density -= step (more points)
	KeyDensityDown                // DOWN: density += step (fewer points)
	KeyScroll                     // page scroll by Delta pixels
)

// String returns the script name of the kind.
func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyCycle:
		return "enter"
	case KeyDelete:
		return "backspace"
	case KeyDensityUp:
		return "up"
	case KeyDensityDown:
		return "down"
	case KeyScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// parseKeyKind maps a script key name to a KeyKind.
func parseKeyKind(name string) (KeyKind, bool) {
	switch name {
	case "enter", "cycle":
		return KeyCycle, true
	case "backspace", "delete":
		return KeyDelete, true
	case "up":
		return KeyDensityUp, true
	case "down":
		return KeyDensityDown, true
	default:
		return 0, false
	}
}

// KeyEvent is one discrete input event. Rune is set for KeyChar, Delta for
// KeyScroll.
type KeyEvent struct {
	Kind  KeyKind
	Rune  rune
	Delta float64
}

// Controller turns input into Session state transitions. Real input is read
// from Ebitengine each frame; queued synthetic events take precedence.
type Controller struct {
	// OnEffectChange, if set, is called after the effect index changes.
	OnEffectChange func(Effect)

	pointer       Vec2
	pointerPinned bool // an injected position holds until the real cursor moves
	lastReal      Vec2

	chars       []rune
	events      []KeyEvent
	injectQueue []syntheticEvent
}

// NewController creates a Controller with no pending input.
func NewController() *Controller {
	return &Controller{}
}

// Pointer returns the current pointer position in screen coordinates.
func (c *Controller) Pointer() Vec2 {
	return c.pointer
}

// Handle applies a single event to s and reports whether any state changed.
// Scroll events are always applied. Every other event is ignored while the
// interactive region is scrolled out of view.
func (c *Controller) Handle(s *Session, ev KeyEvent) bool {
	if ev.Kind == KeyScroll {
		before := s.Viewport.ScrollY
		s.Viewport.Scroll(ev.Delta)
		return s.Viewport.ScrollY != before
	}
	if !s.Viewport.Active() {
		return false
	}

	switch ev.Kind {
	case KeyChar:
		if !unicode.IsPrint(ev.Rune) || !s.Text.Append(ev.Rune) {
			return false
		}
		c.regenerate(s)
	case KeyDelete:
		if !s.Text.Delete() {
			return false
		}
		c.regenerate(s)
	case KeyCycle:
		s.Effect.Cycle()
		if c.OnEffectChange != nil {
			c.OnEffectChange(s.Effect.Effect())
		}
	case KeyDensityUp:
		if !s.Effect.AdjustDensity(-DensityStep) {
			return false
		}
		c.regenerate(s)
	case KeyDensityDown:
		if !s.Effect.AdjustDensity(DensityStep) {
			return false
		}
		c.regenerate(s)
	default:
		return false
	}
	return true
}

func (c *Controller) regenerate(s *Session) {
	if err := s.Regenerate(); err != nil {
		Logger().Error("point cloud regeneration failed", "error", err)
	}
}

// Update reads one frame of input and applies it to s. When synthetic events
// are queued, exactly one is consumed and real keyboard input is skipped.
func (c *Controller) Update(s *Session) {
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), float64(my)}
	if cursor != c.lastReal {
		c.pointerPinned = false
		c.lastReal = cursor
	}
	if !c.pointerPinned {
		c.pointer = cursor
	}

	if c.processInjectedInput(s) {
		return
	}
	for _, ev := range c.pollKeys() {
		c.Handle(s, ev)
	}
}

// pollKeys collects this frame's typed runes, special keys and wheel motion.
func (c *Controller) pollKeys() []KeyEvent {
	c.events = c.events[:0]
	c.chars = ebiten.AppendInputChars(c.chars[:0])
	for _, r := range c.chars {
		c.events = append(c.events, KeyEvent{Kind: KeyChar, Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		c.events = append(c.events, KeyEvent{Kind: KeyCycle})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		c.events = append(c.events, KeyEvent{Kind: KeyDelete})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		c.events = append(c.events, KeyEvent{Kind: KeyDensityUp})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		c.events = append(c.events, KeyEvent{Kind: KeyDensityDown})
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel up (positive) scrolls the page back toward the top.
		c.events = append(c.events, KeyEvent{Kind: KeyScroll, Delta: -wy * scrollStep})
	}
	return c.events
}
