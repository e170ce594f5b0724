// Package glyphfield renders interactively deformable text on [Ebitengine].
//
// A string is converted into a point cloud that follows its glyph outlines,
// and every frame each point is displaced by one of several selectable
// field effects driven by the pointer position and elapsed time. A short,
// fading trail follows the pointer.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and runs
// the game loop:
//
//	cfg := glyphfield.DefaultConfig()
//	font, _ := glyphfield.DefaultFont()
//	game, err := glyphfield.NewGame(cfg, font)
//	if err != nil {
//		log.Fatal(err)
//	}
//	glyphfield.Run(game, cfg.Window)
//
// # Point clouds
//
// [GenerateCloud] shapes text with a [Font], flattens the glyph outlines
// and samples them at a spacing proportional to the density (smaller
// density, more points). The cloud is centered on the canvas using the
// text's exact bounds. A [Session] regenerates its cloud whole whenever the
// text, density or canvas size changes; a cloud never mixes two states.
//
// # Effects
//
// [Effects] lists the nine field effects in cycling order. Each is a pure
// function of the sampled point, pointer, canvas and time:
//
//	in := glyphfield.FieldInput{Point: p, Pointer: mouse, Center: c, Size: sz, Time: t}
//	q := glyphfield.EffectAt(glyphfield.EffectSwirl).Displace(in)
//
// Spiral computes the drawn position outright; every other effect adds an
// offset to the sampled point.
//
// # Input
//
// A [Controller] maps typing, BACKSPACE, ENTER, the UP/DOWN arrows and the
// mouse wheel onto the session. Input other than scrolling is ignored while
// the interactive region is scrolled out of view. Synthetic input can be
// queued with [Controller.InjectText], [Controller.InjectKey] and friends,
// or played back from a JSON script with [LoadTestScript].
//
// # Logging
//
// The package is silent by default. Install a [log/slog] logger with
// [SetLogger] to see lifecycle events, shaping fallbacks and, in debug mode,
// per-frame stats.
//
// [Ebitengine]: https://ebitengine.org
package glyphfield
