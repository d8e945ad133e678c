package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func liveCampaign(placementID uuid.UUID) Campaign {
	return Campaign{
		ID:           uuid.New(),
		StartAt:      time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC),
		Ready:        true,
		PlacementIDs: []uuid.UUID{placementID},
		Creatives: []Creative{
			{ID: uuid.New(), Active: true},
		},
	}
}

func TestCampaignEligibleAt(t *testing.T) {
	placementID := uuid.New()
	at := time.Date(2018, 3, 2, 12, 0, 0, 0, time.UTC)
	end := time.Date(2018, 3, 2, 11, 0, 0, 0, time.UTC)
	later := time.Date(2018, 4, 1, 0, 0, 0, 0, time.UTC)
	two := 2

	tests := []struct {
		name   string
		mutate func(*Campaign)
		want   bool
	}{
		{"live", func(c *Campaign) {}, true},
		{"deleted", func(c *Campaign) { c.Deleted = true }, false},
		{"not ready", func(c *Campaign) { c.Ready = false }, false},
		{"paused", func(c *Campaign) { c.Paused = true }, false},
		{"not started", func(c *Campaign) { c.StartAt = later }, false},
		{"ended", func(c *Campaign) { c.EndAt = &end }, false},
		{"ends exactly now", func(c *Campaign) { c.EndAt = &at }, false},
		{"ends later", func(c *Campaign) { c.EndAt = &later }, true},
		{"wrong placement", func(c *Campaign) { c.PlacementIDs = []uuid.UUID{uuid.New()} }, false},
		{"creative inactive", func(c *Campaign) { c.Creatives[0].Active = false }, false},
		{"creative deleted", func(c *Campaign) { c.Creatives[0].Deleted = true }, false},
		{"needs two creatives", func(c *Campaign) { c.RequiredCreatives = &two }, false},
		{
			"needs two and has two",
			func(c *Campaign) {
				c.RequiredCreatives = &two
				c.Creatives = append(c.Creatives, Creative{ID: uuid.New(), Active: true})
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := liveCampaign(placementID)
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.EligibleAt(at, placementID, 1))
		})
	}
}

func TestCampaignMatchesCriteria(t *testing.T) {
	c := Campaign{Criteria: map[string]string{"section": "tech"}}

	assert.True(t, c.MatchesCriteria(map[string]string{"section": "tech", "lang": "en"}))
	assert.False(t, c.MatchesCriteria(map[string]string{"section": "sports"}))
	assert.False(t, c.MatchesCriteria(nil))

	// Absent criteria matches every request.
	open := Campaign{}
	assert.True(t, open.MatchesCriteria(nil))
	assert.True(t, open.MatchesCriteria(map[string]string{"anything": "goes"}))
}

func TestLiveCreativesFiltersDead(t *testing.T) {
	c := Campaign{Creatives: []Creative{
		{Title: "live", Active: true},
		{Title: "inactive"},
		{Title: "deleted", Active: true, Deleted: true},
	}}
	live := c.LiveCreatives()
	assert.Len(t, live, 1)
	assert.Equal(t, "live", live[0].Title)
}
