package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Creative is a single renderable variant (title/teaser/image) belonging to
// a campaign. The image reference is resolved lazily: eligibility reads do
// not carry it, and only the creative chosen by rotation is joined against
// its image.
type Creative struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Title      string
	Teaser     string
	LandingURL string
	Active     bool
	Deleted    bool
	Position   int
}

// Renderable reports whether the creative may be shown to a viewer.
func (c Creative) Renderable() bool {
	return c.Active && !c.Deleted
}

// CreativeImage is the lazily resolved image reference of a chosen creative,
// with an optional focal point expressed as fractions of width and height.
type CreativeImage struct {
	URL    string
	FocalX *float64
	FocalY *float64
}

// ImageOptions are caller-supplied rendering hints for the resolved image.
type ImageOptions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Source derives the final image source for rendering. Requested dimensions
// and the stored focal point are appended as query parameters so the image
// service can crop around the focal point. The stored URL is returned
// untouched when no adjustment applies or when it does not parse.
func (img CreativeImage) Source(opts ImageOptions) string {
	if img.URL == "" {
		return ""
	}
	params := make([]string, 0, 4)
	if opts.Width > 0 {
		params = append(params, fmt.Sprintf("w=%d", opts.Width))
	}
	if opts.Height > 0 {
		params = append(params, fmt.Sprintf("h=%d", opts.Height))
	}
	if img.FocalX != nil {
		params = append(params, fmt.Sprintf("fx=%.3f", *img.FocalX))
	}
	if img.FocalY != nil {
		params = append(params, fmt.Sprintf("fy=%.3f", *img.FocalY))
	}
	if len(params) == 0 {
		return img.URL
	}
	u, err := url.Parse(img.URL)
	if err != nil {
		return img.URL
	}
	q := strings.Join(params, "&")
	if u.RawQuery == "" {
		u.RawQuery = q
	} else {
		u.RawQuery += "&" + q
	}
	return u.String()
}
