// Package render implements the template mini-language of ad markup. Markup
// is authored as handlebars with a constrained helper set; structural
// validation happens at authoring time, so rendering a validated template
// never fails on missing merge variables.
package render

import (
	"fmt"
	"net/url"

	"github.com/aymerick/raymond"
)

// Helper marker names available inside markup.
const (
	helperTrackingAttrs = "trackingAttributes"
	helperBeacon        = "beacon"
	helperUABeacon      = "uaBeacon"
	helperTrackedLink   = "trackedLink"
)

// BuiltinFallback is the minimal fallback unit used when a template carries
// no fallback markup of its own.
const BuiltinFallback = `<div class="rl-fallback" {{trackingAttributes}}>{{beacon}}</div>`

// Render parses markup fresh, binds the tracking helpers and executes it
// against the merge context. Missing merge variables render as empty output;
// for markup that passed validation the only error sources are helper-level
// I/O-free execution faults, which callers treat as a fallback signal.
func Render(markup string, merge map[string]any, tr Tracking) (string, error) {
	tpl, err := raymond.Parse(markup)
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}
	tpl.RegisterHelpers(helpers(tr))
	out, err := tpl.Exec(merge)
	if err != nil {
		return "", fmt.Errorf("exec markup: %w", err)
	}
	return out, nil
}

// helpers builds the per-render helper set. Helpers close over the tracking
// fields rather than reading them from the merge context, so caller-supplied
// variables can never shadow tracking data.
func helpers(tr Tracking) map[string]any {
	return map[string]any{
		helperTrackingAttrs: func() raymond.SafeString {
			return raymond.SafeString(tr.Attributes())
		},
		helperBeacon: func() raymond.SafeString {
			return raymond.SafeString(fmt.Sprintf(
				`<img src="/load/%s.gif" width="1" height="1" alt="" style="position:absolute;visibility:hidden">`,
				tr.CorrelationID))
		},
		helperUABeacon: func() raymond.SafeString {
			return raymond.SafeString(fmt.Sprintf(
				`<noscript><img src="/view/%s.gif" width="1" height="1" alt=""></noscript>`,
				tr.CorrelationID))
		},
		helperTrackedLink: func(options *raymond.Options) raymond.SafeString {
			href := options.HashStr("href")
			target := options.HashStr("target")

			attrs := tr.Attributes()
			if rel := tr.linkRel(target); rel != "" {
				attrs += fmt.Sprintf(` rel=%q`, rel)
			}
			if target != "" {
				attrs += fmt.Sprintf(` target=%q`, target)
			}
			tracked := fmt.Sprintf("/r/%s?u=%s", tr.CorrelationID, url.QueryEscape(href))
			return raymond.SafeString(fmt.Sprintf(`<a href=%q %s>%s</a>`, tracked, attrs, options.Fn()))
		},
	}
}
