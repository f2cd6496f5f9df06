package usecase

import (
	"context"
	"errors"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// CampaignUseCase provides business logic for ad campaigns and the ad
// spaces they are booked into. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewCampaignUseCase creates a new usecase. observer may be nil.
func NewCampaignUseCase(repo port.CampaignRepository, clock domain.Clock, observer port.CounterObserver) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, clock: clock, observer: observerOrNop(observer)}
}

// Create stores a new campaign. Campaigns start out pending unless a valid
// status is supplied.
func (u *CampaignUseCase) Create(ctx context.Context, c domain.AdCampaign) (*port.CampaignView, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, invalid("name is required")
	}
	if c.AdSpaceID <= 0 {
		return nil, invalid("ad_space_id is required")
	}
	if !c.EndDate.After(c.StartDate) {
		return nil, invalid("end_date must be after start_date")
	}
	if c.Budget.IsNegative() || c.Spent.IsNegative() {
		return nil, invalid("budget and spent must not be negative")
	}
	if c.Status == "" {
		c.Status = domain.StatusPending
	}
	if !domain.ValidStatus(domain.KindCampaign, c.Status) {
		return nil, invalid("unknown campaign status %q", c.Status)
	}
	if _, err := u.repo.GetAdSpace(ctx, c.AdSpaceID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, invalid("ad space %d does not exist", c.AdSpaceID)
		}
		return nil, err
	}
	if err := u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, err
	}
	return u.view(c), nil
}

// Get returns a campaign with its status resolved against the clock.
func (u *CampaignUseCase) Get(ctx context.Context, id int64) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*c), nil
}

func (u *CampaignUseCase) view(c domain.AdCampaign) *port.CampaignView {
	return &port.CampaignView{AdCampaign: c, Phase: c.Lifecycle().Resolve(u.clock.Now())}
}

// CreateAdSpace stores a new ad space, deriving its slug from the name.
func (u *CampaignUseCase) CreateAdSpace(ctx context.Context, s domain.AdSpace) (*domain.AdSpace, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return nil, invalid("name is required")
	}
	s.Slug = domain.EnsureSlug(s.Slug, s.Name)
	if err := u.repo.CreateAdSpace(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAdSpace returns an ad space. Its CTR is derived on read.
func (u *CampaignUseCase) GetAdSpace(ctx context.Context, id int64) (*domain.AdSpace, error) {
	return u.repo.GetAdSpace(ctx, id)
}

// RecordImpression counts an impression on the campaign and on its space.
func (u *CampaignUseCase) RecordImpression(ctx context.Context, id int64) (*port.CampaignCounters, error) {
	return u.record(ctx, id, domain.CampaignImpressions, domain.AdSpaceImpressions, false)
}

// RecordClick counts a click on the campaign and its space and stores the
// recomputed CTR, all in one transaction.
func (u *CampaignUseCase) RecordClick(ctx context.Context, id int64) (*port.CampaignCounters, error) {
	return u.record(ctx, id, domain.CampaignClicks, domain.AdSpaceClicks, true)
}

// record runs the cascade in a fixed order: campaign counter, then the
// campaign row (read under the row lock taken by the update), then the ad
// space counter, then the CTR.
func (u *CampaignUseCase) record(ctx context.Context, id int64, campaignCounter, spaceCounter domain.Counter, saveCTR bool) (*port.CampaignCounters, error) {
	var out port.CampaignCounters
	now := u.clock.Now()
	err := u.repo.InTx(ctx, func(tx port.CampaignRepository) error {
		if _, err := tx.IncrementCounter(ctx, campaignCounter, id, 1, now); err != nil {
			return err
		}
		c, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if _, err = tx.IncrementCounter(ctx, spaceCounter, c.AdSpaceID, 1, now); err != nil {
			return err
		}
		s, err := tx.GetAdSpace(ctx, c.AdSpaceID)
		if err != nil {
			return err
		}
		out = port.CampaignCounters{
			CampaignID:       c.ID,
			ImpressionCount:  c.ImpressionCount,
			ClickCount:       c.ClickCount,
			CTR:              c.LiveCTR(),
			AdSpaceID:        s.ID,
			SpaceImpressions: s.ImpressionCount,
			SpaceClicks:      s.ClickCount,
		}
		if saveCTR {
			return tx.SaveCTR(ctx, c.ID, out.CTR)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(campaignCounter, 1)
	u.observer.CounterChanged(spaceCounter, 1)
	return &out, nil
}

// Approve marks the campaign approved, which also activates it.
func (u *CampaignUseCase) Approve(ctx context.Context, id int64) (*port.CampaignView, error) {
	if err := u.repo.Approve(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

// Pause stops delivery. Any state may be paused.
func (u *CampaignUseCase) Pause(ctx context.Context, id int64) (*port.CampaignView, error) {
	return u.setStatus(ctx, id, domain.StatusPaused)
}

// Resume sets the campaign back to active.
func (u *CampaignUseCase) Resume(ctx context.Context, id int64) (*port.CampaignView, error) {
	return u.setStatus(ctx, id, domain.StatusActive)
}

// Cancel stops the campaign for good.
func (u *CampaignUseCase) Cancel(ctx context.Context, id int64) (*port.CampaignView, error) {
	return u.setStatus(ctx, id, domain.StatusCancelled)
}

// Complete ends the campaign ahead of its end date.
func (u *CampaignUseCase) Complete(ctx context.Context, id int64) (*port.CampaignView, error) {
	return u.setStatus(ctx, id, domain.StatusCompleted)
}

func (u *CampaignUseCase) setStatus(ctx context.Context, id int64, status string) (*port.CampaignView, error) {
	if err := u.repo.SetStatus(ctx, id, status, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

// Delete soft-deletes the campaign.
func (u *CampaignUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.DeleteCampaign(ctx, id, u.clock.Now())
}
