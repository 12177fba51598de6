package search

const (
	// OverlayGap separates the overlay from the bottom of the anchor.
	OverlayGap = 8
	// ViewportMargin is kept free below the overlay.
	ViewportMargin = 16
)

// Rect is an element's bounding box in viewport pixels.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size is the visible viewport.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement is the absolute screen position of the overlay. Measured is
// false for the default placement used when no geometry was available;
// MaxHeight is only meaningful when Measured is true.
type Placement struct {
	Top       float64 `json:"top"`
	Left      float64 `json:"left"`
	Width     float64 `json:"width"`
	MaxHeight float64 `json:"maxHeight"`
	Measured  bool    `json:"measured"`
}

// Place puts the overlay right under anchor and clamps its height to the
// viewport space left below it.
func Place(anchor Rect, viewport Size) Placement {
	top := anchor.Bottom() + OverlayGap
	maxHeight := viewport.Height - top - ViewportMargin
	if maxHeight < 0 {
		maxHeight = 0
	}
	return Placement{
		Top:       top,
		Left:      anchor.Left,
		Width:     anchor.Width,
		MaxHeight: maxHeight,
		Measured:  true,
	}
}

// MeasureFunc reports the current anchor box and viewport. ok is false when
// the geometry is not known.
type MeasureFunc func() (anchor Rect, viewport Size, ok bool)
