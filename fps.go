package glyphfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshSeconds = 0.5

// fpsWidget displays the current FPS and TPS in the top-right corner. The
// text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

// update advances the refresh timer by dt seconds.
func (w *fpsWidget) update(dt float64) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
		w.elapsed = fpsRefreshSeconds
	}
	w.elapsed += dt
	if w.elapsed < fpsRefreshSeconds {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-w.img.Bounds().Dx()-overlayMargin), overlayMargin)
	screen.DrawImage(w.img, op)
}
