package glyphfield

// syntheticEvent represents a single injected input event. Pointer events use
// screen coordinates, matching real cursor input.
type syntheticEvent struct {
	key        KeyEvent
	hasKey     bool
	pointer    Vec2
	hasPointer bool
}

// InjectKey queues a key event. The event is consumed on the next frame's
// Update call.
func (c *Controller) InjectKey(kind KeyKind) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{key: KeyEvent{Kind: kind}, hasKey: true})
}

// InjectChar queues a single typed rune.
func (c *Controller) InjectChar(r rune) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		key:    KeyEvent{Kind: KeyChar, Rune: r},
		hasKey: true,
	})
}

// InjectText queues one typed rune per frame.
func (c *Controller) InjectText(s string) {
	for _, r := range s {
		c.InjectChar(r)
	}
}

// InjectScroll queues a page scroll of dy pixels. Positive values scroll
// down, away from the interactive region.
func (c *Controller) InjectScroll(dy float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		key:    KeyEvent{Kind: KeyScroll, Delta: dy},
		hasKey: true,
	})
}

// InjectPointer queues a pointer move to the given screen coordinates. The
// position holds until the real cursor moves.
func (c *Controller) InjectPointer(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{pointer: Vec2{x, y}, hasPointer: true})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames frames. Minimum frames is 2.
func (c *Controller) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		c.InjectPointer(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// Pending returns the number of queued synthetic events.
func (c *Controller) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real keyboard input should be
// skipped).
func (c *Controller) processInjectedInput(s *Session) bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.hasPointer {
		c.pointer = evt.pointer
		c.pointerPinned = true
	}
	if evt.hasKey {
		c.Handle(s, evt.key)
	}
	return true
}
