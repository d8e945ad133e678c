package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
	"relay-ads/internal/core/port/mocks"
)

const testPrimary = `<div {{trackingAttributes}}>` +
	`{{#trackedLink href=creative.url}}{{creative.title}}{{/trackedLink}}` +
	`{{beacon}}</div>`

type captureRecorder struct {
	mu     sync.Mutex
	events []domain.RequestEvent
}

func (r *captureRecorder) Record(ev domain.RequestEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *captureRecorder) all() []domain.RequestEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.RequestEvent(nil), r.events...)
}

type stubBot struct{}

func (stubBot) Classify(string) domain.BotVerdict { return domain.BotVerdict{} }

type fixture struct {
	placement domain.Placement
	template  domain.Template
	account   domain.Account
}

func newFixture(reserve int) fixture {
	accountID := uuid.New()
	templateID := uuid.New()
	return fixture{
		placement: domain.Placement{
			ID:         uuid.New(),
			AccountID:  accountID,
			TemplateID: templateID,
		},
		template: domain.Template{
			ID:            templateID,
			AccountID:     accountID,
			PrimaryMarkup: testPrimary,
		},
		account: domain.Account{
			ID:                    accountID,
			DefaultReservePercent: reserve,
			RequiredCreatives:     1,
		},
	}
}

func (f fixture) expectLookups(repo *mocks.MockDeliveryRepository) {
	repo.EXPECT().GetPlacement(mock.Anything, f.placement.ID).Return(&f.placement, nil)
	repo.EXPECT().GetTemplate(mock.Anything, f.template.ID).Return(&f.template, nil)
	repo.EXPECT().GetAccount(mock.Anything, f.account.ID).Return(&f.account, nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCampaign(placementID uuid.UUID, creatives int) domain.Campaign {
	c := domain.Campaign{
		ID:           uuid.New(),
		StartAt:      time.Now().Add(-time.Hour),
		Ready:        true,
		PlacementIDs: []uuid.UUID{placementID},
	}
	for i := 0; i < creatives; i++ {
		c.Creatives = append(c.Creatives, domain.Creative{
			ID:         uuid.New(),
			CampaignID: c.ID,
			Title:      "Title",
			LandingURL: "https://content.example.com/a",
			Active:     true,
			Position:   i,
		})
	}
	return c
}

// Reserve 0, one eligible campaign with one active creative, one slot:
// exactly one campaign-backed result referencing that creative.
func TestDeliverSingleCampaignSlot(t *testing.T) {
	repo := mocks.NewMockDeliveryRepository(t)
	f := newFixture(0)
	campaign := testCampaign(f.placement.ID, 1)
	creative := campaign.Creatives[0]

	f.expectLookups(repo)
	repo.EXPECT().
		FindEligibleCampaigns(mock.Anything, mock.Anything, f.placement.ID, mock.Anything, 1).
		Return([]domain.Campaign{campaign}, nil)
	repo.EXPECT().
		ResolveCreativeImage(mock.Anything, creative.ID).
		Return(domain.CreativeImage{URL: "https://cdn.example.com/a.jpg"}, nil)

	rec := &captureRecorder{}
	svc := NewDeliveryUseCase(repo, rec, stubBot{}, 1, testLogger())

	res, err := svc.Deliver(context.Background(), port.DeliveryRequest{
		PlacementID: f.placement.ID.String(),
		Slots:       1,
	})
	require.NoError(t, err)
	require.Len(t, res, 1)

	slot := res[0]
	assert.False(t, slot.Fallback)
	require.NotNil(t, slot.CampaignID)
	require.NotNil(t, slot.CreativeID)
	assert.Equal(t, campaign.ID, *slot.CampaignID)
	assert.Equal(t, creative.ID, *slot.CreativeID)
	assert.Contains(t, slot.HTML, "Title")

	events := rec.all()
	require.Len(t, events, 1)
	assert.Equal(t, f.placement.ID, events[0].PlacementID)
	require.NotNil(t, events[0].CampaignID)
	assert.Equal(t, campaign.ID, *events[0].CampaignID)
}

// Reserve 100 diverts the whole batch: three fallback results and the
// eligibility query is never issued.
func TestDeliverFullReserveSkipsEligibility(t *testing.T) {
	repo := mocks.NewMockDeliveryRepository(t)
	f := newFixture(100)
	f.expectLookups(repo)

	rec := &captureRecorder{}
	svc := NewDeliveryUseCase(repo, rec, stubBot{}, 1, testLogger())

	res, err := svc.Deliver(context.Background(), port.DeliveryRequest{
		PlacementID: f.placement.ID.String(),
		Slots:       3,
	})
	require.NoError(t, err)
	require.Len(t, res, 3)
	for _, slot := range res {
		assert.True(t, slot.Fallback)
		assert.Nil(t, slot.CampaignID)
		assert.Nil(t, slot.CreativeID)
		assert.NotEmpty(t, slot.HTML)
	}
	assert.Len(t, rec.all(), 3)
}

func TestDeliverValidation(t *testing.T) {
	repo := mocks.NewMockDeliveryRepository(t)
	svc := NewDeliveryUseCase(repo, &captureRecorder{}, stubBot{}, 1, testLogger())

	var verr port.ValidationError
	_, err := svc.Deliver(context.Background(), port.DeliveryRequest{PlacementID: uuid.NewString(), Slots: 0})
	require.ErrorAs(t, err, &verr)

	_, err = svc.Deliver(context.Background(), port.DeliveryRequest{PlacementID: uuid.NewString(), Slots: 11})
	require.ErrorAs(t, err, &verr)

	_, err = svc.Deliver(context.Background(), port.DeliveryRequest{PlacementID: "not-a-uuid", Slots: 1})
	require.ErrorAs(t, err, &verr)
}

func TestDeliverUnknownPlacement(t *testing.T) {
	repo := mocks.NewMockDeliveryRepository(t)
	id := uuid.New()
	repo.EXPECT().GetPlacement(mock.Anything, id).Return(nil, port.ErrNotFound)

	svc := NewDeliveryUseCase(repo, &captureRecorder{}, stubBot{}, 1, testLogger())
	_, err := svc.Deliver(context.Background(), port.DeliveryRequest{PlacementID: id.String(), Slots: 1})
	require.ErrorIs(t, err, port.ErrNotFound)
}

// A failing image resolution degrades its own slot to fallback without
// touching the other slots.
func TestDeliverSlotFailureIsIsolated(t *testing.T) {
	repo := mocks.NewMockDeliveryRepository(t)
	f := newFixture(0)
	good := testCampaign(f.placement.ID, 1)
	bad := testCampaign(f.placement.ID, 1)

	f.expectLookups(repo)
	repo.EXPECT().
		FindEligibleCampaigns(mock.Anything, mock.Anything, f.placement.ID, mock.Anything, 1).
		Return([]domain.Campaign{good, bad}, nil)
	repo.EXPECT().
		ResolveCreativeImage(mock.Anything, good.Creatives[0].ID).
		Return(domain.CreativeImage{URL: "https://cdn.example.com/a.jpg"}, nil)
	repo.EXPECT().
		ResolveCreativeImage(mock.Anything, bad.Creatives[0].ID).
		Return(domain.CreativeImage{}, errors.New("image store down"))

	svc := NewDeliveryUseCase(repo, &captureRecorder{}, stubBot{}, 1, testLogger())
	res, err := svc.Deliver(context.Background(), port.DeliveryRequest{
		PlacementID: f.placement.ID.String(),
		Slots:       2,
	})
	require.NoError(t, err)
	require.Len(t, res, 2)

	var fallbacks, real int
	for _, slot := range res {
		if slot.Fallback {
			fallbacks++
		} else {
			real++
			assert.Equal(t, good.ID, *slot.CampaignID)
		}
	}
	assert.Equal(t, 1, fallbacks)
	assert.Equal(t, 1, real)
}

// selectSlots returns min(N,K) real slots padded with fallback markers and
// never repeats a campaign.
func TestSelectSlotsProperty(t *testing.T) {
	u := NewDeliveryUseCase(nil, nil, nil, 7, testLogger())
	placementID := uuid.New()

	for k := 0; k <= 12; k++ {
		eligible := make([]domain.Campaign, k)
		for i := range eligible {
			eligible[i] = testCampaign(placementID, 1)
		}
		for n := 1; n <= 10; n++ {
			slots := u.selectSlots(eligible, n)
			require.Len(t, slots, n)

			seen := make(map[uuid.UUID]bool)
			real := 0
			for _, s := range slots {
				if s.campaign == nil {
					continue
				}
				real++
				assert.False(t, seen[s.campaign.ID], "campaign selected twice")
				seen[s.campaign.ID] = true
			}
			want := n
			if k < n {
				want = k
			}
			assert.Equal(t, want, real, "k=%d n=%d", k, n)
		}
	}
}

// The rotator never returns a dead creative and returns nil exactly when no
// live creative exists.
func TestRotate(t *testing.T) {
	u := NewDeliveryUseCase(nil, nil, nil, 7, testLogger())

	dead := testCampaign(uuid.New(), 0)
	dead.Creatives = []domain.Creative{
		{ID: uuid.New(), Deleted: true, Active: true},
		{ID: uuid.New(), Active: false},
	}
	assert.Nil(t, u.rotate(&dead))

	mixed := testCampaign(uuid.New(), 2)
	mixed.Creatives = append(mixed.Creatives, domain.Creative{ID: uuid.New(), Deleted: true, Active: true})
	liveIDs := map[uuid.UUID]bool{
		mixed.Creatives[0].ID: true,
		mixed.Creatives[1].ID: true,
	}
	for i := 0; i < 200; i++ {
		cr := u.rotate(&mixed)
		require.NotNil(t, cr)
		assert.True(t, liveIDs[cr.ID], "rotator picked a dead creative")
	}
}

// Admission converges to 1 - r/100 over many draws.
func TestAdmitConvergence(t *testing.T) {
	u := NewDeliveryUseCase(nil, nil, nil, 99, testLogger())

	const trials = 100000
	for _, reserve := range []int{0, 30, 65, 100} {
		admitted := 0
		for i := 0; i < trials; i++ {
			if u.admit(reserve) {
				admitted++
			}
		}
		got := float64(admitted) / trials
		want := 1 - float64(reserve)/100
		assert.InDelta(t, want, got, 0.01, "reserve=%d", reserve)
	}
}
