package aggregate

import (
	"strings"
	"time"
)

// Family describes one independent counter family: its dimension tuple,
// bucket granularity and the timezone day buckets are qualified in.
type Family struct {
	Name        string
	Granularity Granularity
	Dims        []string
	Location    *time.Location
}

// The counter families maintained by the engine.
var (
	// CampaignCreativeDaily counts views and clicks per campaign and
	// creative per day.
	CampaignCreativeDaily = Family{
		Name:        "campaign_creative_daily",
		Granularity: Daily,
		Dims:        []string{"campaign", "creative"},
	}

	// PlacementDaily counts views and clicks per placement per day.
	PlacementDaily = Family{
		Name:        "placement_daily",
		Granularity: Daily,
		Dims:        []string{"placement"},
	}

	// RequestVolumeHourly counts raw request volume per content hash per
	// hour, used for bot and dedup analysis.
	RequestVolumeHourly = Family{
		Name:        "request_volume_hourly",
		Granularity: Hourly,
		Dims:        []string{"hash"},
	}
)

// Metrics recorded against the families above.
const (
	MetricView    = "view"
	MetricClick   = "click"
	MetricRequest = "request"
)

// DimKey builds the canonical dimension key for this family: values joined
// in declared dimension order, so identical tuples always map to the same
// counter row.
func (f Family) DimKey(dims map[string]string) string {
	var b strings.Builder
	for i, d := range f.Dims {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(d)
		b.WriteByte('=')
		b.WriteString(dims[d])
	}
	return b.String()
}

// Bucket truncates t for this family.
func (f Family) Bucket(t time.Time) time.Time {
	return Bucket(t, f.Granularity, f.Location)
}
