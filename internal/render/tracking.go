package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Tracking is the canonical field set serialized into tracking attributes.
// The same attribute string marks both the viewed container and every
// tracked link, so view and click beacons join on the correlation id.
type Tracking struct {
	CorrelationID uuid.UUID
	PlacementID   uuid.UUID
	CampaignID    *uuid.UUID
	CreativeID    *uuid.UUID
	Custom        map[string]string
}

// Attributes serializes the tracking fields into a stable attribute string.
// Custom keys are emitted in sorted order so the output is deterministic for
// a given field set.
func (t Tracking) Attributes() string {
	parts := []string{
		fmt.Sprintf(`data-rl-cid=%q`, t.CorrelationID),
		fmt.Sprintf(`data-rl-pid=%q`, t.PlacementID),
	}
	if t.CampaignID != nil {
		parts = append(parts, fmt.Sprintf(`data-rl-camp=%q`, *t.CampaignID))
	}
	if t.CreativeID != nil {
		parts = append(parts, fmt.Sprintf(`data-rl-cr=%q`, *t.CreativeID))
	}
	if len(t.Custom) > 0 {
		keys := make([]string, 0, len(t.Custom))
		for k := range t.Custom {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kv := make([]string, 0, len(keys))
		for _, k := range keys {
			kv = append(kv, k+":"+t.Custom[k])
		}
		parts = append(parts, fmt.Sprintf(`data-rl-kv="%s"`, html.EscapeString(strings.Join(kv, ";"))))
	}
	return strings.Join(parts, " ")
}

// linkRel derives the rel attribute of a tracked link: nofollow whenever a
// campaign is present, with noopener appended for external new-tab targets.
func (t Tracking) linkRel(target string) string {
	var rel []string
	if t.CampaignID != nil {
		rel = append(rel, "nofollow")
	}
	if target == "_blank" {
		rel = append(rel, "noopener")
	}
	return strings.Join(rel, " ")
}
