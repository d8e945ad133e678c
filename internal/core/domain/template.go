package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template holds the two markup sources bound to a placement. Markup is
// validated when the template is authored; the delivery engine assumes any
// template it reads has already passed structural validation.
type Template struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Name      string

	// PrimaryMarkup renders campaign-backed slots.
	PrimaryMarkup string

	// FallbackMarkup, when present, renders fallback slots. Absent markup
	// falls back to a built-in minimal unit.
	FallbackMarkup *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
