// Package botdetect classifies request user-agents as automated traffic.
package botdetect

import (
	"strings"

	"github.com/mssola/user_agent"

	"relay-ads/internal/core/domain"
)

// Detector wraps the user-agent parser behind the BotDetector port.
type Detector struct{}

// New returns a ready detector.
func New() Detector { return Detector{} }

// Classify derives a verdict from the raw user-agent string. An empty
// user-agent is treated as suspect but below crawler weight.
func (Detector) Classify(ua string) domain.BotVerdict {
	v := domain.BotVerdict{Value: ua}
	trimmed := strings.TrimSpace(ua)
	if trimmed == "" {
		v.Detected = true
		v.Reason = "empty-user-agent"
		v.Weight = 0.8
		return v
	}
	parsed := user_agent.New(trimmed)
	if parsed.Bot() {
		v.Detected = true
		v.Reason = "crawler"
		v.Weight = 1.0
		return v
	}
	return v
}
