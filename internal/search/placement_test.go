package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_BelowAnchor(t *testing.T) {
	anchor := Rect{Top: 100, Left: 20, Width: 300, Height: 40}
	viewport := Size{Width: 1024, Height: 768}

	p := Place(anchor, viewport)

	assert.Equal(t, Placement{
		Top:       148,
		Left:      20,
		Width:     300,
		MaxHeight: 604,
		Measured:  true,
	}, p)
}

func TestPlace_ClampsMaxHeight(t *testing.T) {
	anchor := Rect{Top: 740, Left: 0, Width: 200, Height: 40}

	p := Place(anchor, Size{Width: 800, Height: 768})

	assert.Equal(t, float64(788), p.Top)
	assert.Zero(t, p.MaxHeight)
}
