package render

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTracking() Tracking {
	campaignID := uuid.MustParse("7df9a2e1-045c-4c6e-9f3a-0d2b5a1c9e44")
	creativeID := uuid.MustParse("9b1f5f63-58da-4b2f-8b77-6f1b2f3c4d55")
	return Tracking{
		CorrelationID: uuid.MustParse("92e998a7-e596-4747-a233-09108938c8d4"),
		PlacementID:   uuid.MustParse("3f2c1b0a-9d8e-4f7a-b6c5-d4e3f2a1b0c9"),
		CampaignID:    &campaignID,
		CreativeID:    &creativeID,
		Custom:        map[string]string{"section": "tech", "lang": "en"},
	}
}

func TestTrackingAttributesStable(t *testing.T) {
	tr := testTracking()

	attrs := tr.Attributes()
	assert.Equal(t, attrs, tr.Attributes())
	assert.Contains(t, attrs, `data-rl-cid="92e998a7-e596-4747-a233-09108938c8d4"`)
	assert.Contains(t, attrs, `data-rl-pid="3f2c1b0a-9d8e-4f7a-b6c5-d4e3f2a1b0c9"`)
	assert.Contains(t, attrs, `data-rl-camp="7df9a2e1-045c-4c6e-9f3a-0d2b5a1c9e44"`)
	// Custom keys are sorted.
	assert.Contains(t, attrs, `data-rl-kv="lang:en;section:tech"`)

	// Without campaign or creative the fields are omitted entirely.
	bare := Tracking{CorrelationID: tr.CorrelationID, PlacementID: tr.PlacementID}
	assert.NotContains(t, bare.Attributes(), "data-rl-camp")
	assert.NotContains(t, bare.Attributes(), "data-rl-cr")
	assert.NotContains(t, bare.Attributes(), "data-rl-kv")
}

func TestRenderCampaignMarkup(t *testing.T) {
	tr := testTracking()
	markup := `<div {{trackingAttributes}}>` +
		`{{#trackedLink href=creative.url target="_blank"}}{{creative.title}}{{/trackedLink}}` +
		`{{beacon}}{{uaBeacon}}</div>`

	out, err := Render(markup, map[string]any{
		"creative": map[string]any{
			"title": "Read this",
			"url":   "https://content.example.com/a?b=1",
		},
	}, tr)
	require.NoError(t, err)

	assert.Contains(t, out, tr.Attributes())
	assert.Contains(t, out, ">Read this</a>")
	// The href is rewritten through the click redirect with the original
	// target escaped.
	assert.Contains(t, out,
		fmt.Sprintf(`href="/r/%s?u=https%%3A%%2F%%2Fcontent.example.com%%2Fa%%3Fb%%3D1"`, tr.CorrelationID))
	assert.Contains(t, out, `rel="nofollow noopener"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, fmt.Sprintf(`src="/load/%s.gif"`, tr.CorrelationID))
	assert.Contains(t, out, "<noscript>")
}

func TestRenderLinkRelRules(t *testing.T) {
	markup := `{{#trackedLink href="https://x.example/"}}go{{/trackedLink}}`

	// Campaign present, same-tab target: nofollow only.
	out, err := Render(markup, nil, testTracking())
	require.NoError(t, err)
	assert.Contains(t, out, `rel="nofollow"`)
	assert.NotContains(t, out, "noopener")

	// No campaign, same-tab target: no rel attribute at all.
	bare := Tracking{CorrelationID: uuid.New(), PlacementID: uuid.New()}
	out, err = Render(markup, nil, bare)
	require.NoError(t, err)
	assert.NotContains(t, out, "rel=")
}

func TestRenderMissingVariablesDegradeToEmpty(t *testing.T) {
	tr := testTracking()
	out, err := Render(`<p>{{nothing.here}}</p>{{alsoMissing}}`, map[string]any{}, tr)
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", out)
}

func TestBuiltinFallbackRenders(t *testing.T) {
	tr := Tracking{CorrelationID: uuid.New(), PlacementID: uuid.New()}
	out, err := Render(BuiltinFallback, nil, tr)
	require.NoError(t, err)
	assert.Contains(t, out, "rl-fallback")
	assert.Contains(t, out, tr.Attributes())
	assert.Contains(t, out, fmt.Sprintf("/load/%s.gif", tr.CorrelationID))
}
