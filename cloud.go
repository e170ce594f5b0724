package glyphfield

// Density bounds and step. Density is the inverse point-spacing control:
// points are placed every Density*densitySpacingScale pixels along glyph
// contours, so smaller values produce more points.
const (
	MinDensity     = 0.05
	MaxDensity     = 0.2
	DefaultDensity = 0.1
	DensityStep    = 0.01

	densitySpacingScale = 100
)

// ClampDensity restricts d to [MinDensity, MaxDensity].
func ClampDensity(d float64) float64 {
	return clamp(d, MinDensity, MaxDensity)
}

// densitySpacing converts a density value to a point spacing in pixels.
func densitySpacing(d float64) float64 {
	return ClampDensity(d) * densitySpacingScale
}

// CloudRequest is the full input tuple of a point cloud generation.
type CloudRequest struct {
	Text        string
	Placeholder string
	FontSize    float64
	Density     float64
	Width       int
	Height      int
}

// PointCloud is an immutable set of outline sample points together with the
// exact inputs it was generated from.
type PointCloud struct {
	Points []Vec2
	// Text is the string that was actually shaped.
	Text string
	// Placeholder is true when the request text was empty and the
	// placeholder was shaped instead. Renderers draw it dimmer.
	Placeholder bool
	// Bounds is the centered outline bounding box in canvas coordinates.
	Bounds   Rect
	FontSize float64
	Density  float64
	Width    int
	Height   int
}

// Len returns the number of points.
func (c *PointCloud) Len() int {
	return len(c.Points)
}

// Matches reports whether the cloud was built from req.
func (c *PointCloud) Matches(req CloudRequest) bool {
	text, placeholder := req.Text, false
	if text == "" {
		text, placeholder = req.Placeholder, true
	}
	return c.Text == text && c.Placeholder == placeholder &&
		c.FontSize == req.FontSize && c.Density == ClampDensity(req.Density) &&
		c.Width == req.Width && c.Height == req.Height
}

// GenerateCloud shapes req.Text (or req.Placeholder when Text is empty),
// centers its outline bounds on the canvas and samples points along it.
// It has no side effects; the caller swaps the returned cloud in whole.
// Unshapeable text yields a *ShapingError.
func GenerateCloud(f *Font, req CloudRequest) (PointCloud, error) {
	text, placeholder := req.Text, false
	if text == "" {
		text, placeholder = req.Placeholder, true
	}
	density := ClampDensity(req.Density)

	bounds, err := f.MeasureBounds(text, req.FontSize)
	if err != nil {
		return PointCloud{}, err
	}

	// Move the box's left edge to W/2 - w/2 and center it vertically.
	x := float64(req.Width)/2 - bounds.Width/2 - bounds.X
	y := float64(req.Height)/2 - bounds.Height/2 - bounds.Y

	points, err := f.ShapeToPoints(text, x, y, req.FontSize, density)
	if err != nil {
		return PointCloud{}, err
	}

	bounds.X += x
	bounds.Y += y
	return PointCloud{
		Points:      points,
		Text:        text,
		Placeholder: placeholder,
		Bounds:      bounds,
		FontSize:    req.FontSize,
		Density:     density,
		Width:       req.Width,
		Height:      req.Height,
	}, nil
}
