package render

import (
	"fmt"
	"regexp"

	"github.com/aymerick/raymond"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
)

// Marker patterns. Counting runs over the raw source so authoring-time
// validation does not depend on helper registration.
var (
	reTrackingAttrs = regexp.MustCompile(`\{\{\s*trackingAttributes\s*\}\}`)
	reBeacon        = regexp.MustCompile(`\{\{\s*beacon\s*\}\}`)
	reUABeacon      = regexp.MustCompile(`\{\{\s*uaBeacon\s*\}\}`)
	reTrackedLink   = regexp.MustCompile(`\{\{#\s*trackedLink(\s|\})`)
)

// ValidateTemplate checks both markup sources of a template. It is enforced
// when a template is authored; markup that fails here must never reach
// delivery.
func ValidateTemplate(t domain.Template) error {
	if err := ValidatePrimary(t.PrimaryMarkup); err != nil {
		return err
	}
	if t.FallbackMarkup != nil {
		return ValidateFallback(*t.FallbackMarkup)
	}
	return nil
}

// ValidatePrimary enforces the structural contract of campaign markup:
// exactly one container-attribute marker, exactly one base beacon, at most
// one user-agent beacon, and at least one tracked link around the primary
// href.
func ValidatePrimary(markup string) error {
	if err := parses(markup); err != nil {
		return err
	}
	if n := count(reTrackingAttrs, markup); n != 1 {
		return markerError(helperTrackingAttrs, "exactly one", n)
	}
	if n := count(reBeacon, markup); n != 1 {
		return markerError(helperBeacon, "exactly one", n)
	}
	if n := count(reUABeacon, markup); n > 1 {
		return markerError(helperUABeacon, "at most one", n)
	}
	if n := count(reTrackedLink, markup); n < 1 {
		return markerError(helperTrackedLink, "at least one", n)
	}
	return nil
}

// ValidateFallback enforces the analogous contract on fallback markup, with
// every marker independently optional.
func ValidateFallback(markup string) error {
	if err := parses(markup); err != nil {
		return err
	}
	if n := count(reTrackingAttrs, markup); n > 1 {
		return markerError(helperTrackingAttrs, "at most one", n)
	}
	if n := count(reBeacon, markup); n > 1 {
		return markerError(helperBeacon, "at most one", n)
	}
	if n := count(reUABeacon, markup); n > 1 {
		return markerError(helperUABeacon, "at most one", n)
	}
	return nil
}

func parses(markup string) error {
	if _, err := raymond.Parse(markup); err != nil {
		return port.ValidationError(fmt.Sprintf("markup does not parse: %v", err))
	}
	return nil
}

func count(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

func markerError(marker, want string, got int) error {
	return port.ValidationError(fmt.Sprintf("markup must contain %s {{%s}} marker, found %d", want, marker, got))
}
