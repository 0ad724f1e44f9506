package snapshot

import "github.com/gogpu/gg"

// SnapshotBuilderOption configures a single rasterization.
type SnapshotBuilderOption func(*settings)

type settings struct {
	width       int
	height      int
	lineWidth   float64
	pointRadius float64
	background  gg.RGBA
	label       string
}

func defaultSettings() settings {
	return settings{
		width:       DefaultWidth,
		height:      DefaultHeight,
		lineWidth:   1.5,
		pointRadius: 2,
		background:  gg.RGB(0, 0.1, 0.2),
	}
}

func resolve(options []SnapshotBuilderOption) settings {
	s := defaultSettings()
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// WithSize sets the image size in pixels. Non-positive values keep the default.
//
// Parameters:
//   - width: image width in pixels
//   - height: image height in pixels
//
// Returns:
//   - SnapshotBuilderOption: a function that applies the size to the settings
func WithSize(width, height int) SnapshotBuilderOption {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

// WithLineWidth sets the stroke width used for lines, in pixels.
//
// Parameters:
//   - w: stroke width in pixels
//
// Returns:
//   - SnapshotBuilderOption: a function that applies the line width to the settings
func WithLineWidth(w float64) SnapshotBuilderOption {
	return func(s *settings) {
		if w > 0 {
			s.lineWidth = w
		}
	}
}

// WithPointRadius sets the radius of drawn points, in pixels.
func WithPointRadius(r float64) SnapshotBuilderOption {
	return func(s *settings) {
		if r > 0 {
			s.pointRadius = r
		}
	}
}

// WithBackground overrides the clear color.
func WithBackground(c gg.RGBA) SnapshotBuilderOption {
	return func(s *settings) {
		s.background = c
	}
}

// WithLabel stamps a line of text into the top-left corner of the image.
//
// Parameters:
//   - label: the text, ASCII only; empty disables the label
//
// Returns:
//   - SnapshotBuilderOption: a function that applies the label to the settings
func WithLabel(label string) SnapshotBuilderOption {
	return func(s *settings) {
		s.label = label
	}
}
