package usecase

import (
	"context"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
)

type HostUseCase struct {
	rsvpRepo repository.RsvpRepository
}

func NewHostUseCase(rsvpRepo repository.RsvpRepository) *HostUseCase {
	return &HostUseCase{rsvpRepo: rsvpRepo}
}

type RsvpSummary struct {
	Attending    int64 `json:"attending"`
	NotAttending int64 `json:"not_attending"`
	Uncertain    int64 `json:"uncertain"`
	Total        int64 `json:"total"`
}

func (u *HostUseCase) ListRsvps(ctx context.Context, page, pageSize int) ([]entity.RSVP, int64, error) {
	offset := (page - 1) * pageSize
	return u.rsvpRepo.List(ctx, pageSize, offset)
}

func (u *HostUseCase) Summary(ctx context.Context) (*RsvpSummary, error) {
	counts, err := u.rsvpRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &RsvpSummary{
		Attending:    counts[entity.RSVPAttending],
		NotAttending: counts[entity.RSVPNotAttending],
		Uncertain:    counts[entity.RSVPUncertain],
	}
	summary.Total = summary.Attending + summary.NotAttending + summary.Uncertain
	return summary, nil
}
