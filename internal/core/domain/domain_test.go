package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveReserve(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name     string
		override *int
		account  int
		want     int
	}{
		{"placement override wins", intp(40), 10, 40},
		{"zero override is valid", intp(0), 10, 0},
		{"override above range ignored", intp(120), 10, 10},
		{"override below range ignored", intp(-1), 10, 10},
		{"account default", nil, 25, 25},
		{"account default out of range", nil, 200, 0},
		{"nothing configured", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Placement{ReservePercent: tt.override}
			a := Account{DefaultReservePercent: tt.account}
			assert.Equal(t, tt.want, p.EffectiveReserve(a))
		})
	}
}

func TestCleanCustom(t *testing.T) {
	got := CleanCustom(map[string]any{
		"section":  " tech ",
		"page":     3,
		"score":    1.5,
		"flag":     true,
		"empty":    "   ",
		"":         "nameless",
		"nested":   map[string]any{"drop": "me"},
		"list":     []string{"drop"},
		"nilValue": nil,
	})
	assert.Equal(t, map[string]string{
		"section": "tech",
		"page":    "3",
		"score":   "1.5",
		"flag":    "true",
	}, got)
}

func TestCreativeImageSource(t *testing.T) {
	fx, fy := 0.25, 0.75

	img := CreativeImage{URL: "https://cdn.example.com/a.jpg", FocalX: &fx, FocalY: &fy}
	assert.Equal(t,
		"https://cdn.example.com/a.jpg?w=300&h=250&fx=0.250&fy=0.750",
		img.Source(ImageOptions{Width: 300, Height: 250}))

	// No options and no focal point leaves the URL untouched.
	plain := CreativeImage{URL: "https://cdn.example.com/b.jpg"}
	assert.Equal(t, "https://cdn.example.com/b.jpg", plain.Source(ImageOptions{}))

	// Existing query params are preserved.
	versioned := CreativeImage{URL: "https://cdn.example.com/c.jpg?v=2"}
	assert.Equal(t, "https://cdn.example.com/c.jpg?v=2&w=100", versioned.Source(ImageOptions{Width: 100}))

	assert.Equal(t, "", CreativeImage{}.Source(ImageOptions{Width: 100}))
}
