package usecase

import (
	"context"
	"strings"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/logger"
)

// Draft is a guest's unsaved form input: name, wish text and RSVP answer.
type Draft struct {
	UserName   string `json:"user_name"`
	Comment    string `json:"comment"`
	RsvpStatus string `json:"rsvp_status"`
}

// SubmitOutcome reports each half of a combined submission separately. The
// two writes are independent: one failing never rolls back the other, and a
// partial success is a legitimate result that gets reported as-is.
type SubmitOutcome struct {
	WishSubmitted bool
	RsvpSubmitted bool
	WishErr       error
	RsvpErr       error
}

func (o SubmitOutcome) Failed() bool {
	return o.WishErr != nil || o.RsvpErr != nil
}

type GuestbookUseCase struct {
	wishRepo repository.WishRepository
	rsvpRepo repository.RsvpRepository
}

func NewGuestbookUseCase(
	wishRepo repository.WishRepository,
	rsvpRepo repository.RsvpRepository,
) *GuestbookUseCase {
	return &GuestbookUseCase{
		wishRepo: wishRepo,
		rsvpRepo: rsvpRepo,
	}
}

func (u *GuestbookUseCase) ListWishes(ctx context.Context) ([]entity.Wish, error) {
	return u.wishRepo.List(ctx)
}

// Validate checks a draft without touching the store. A draft is valid when
// the name is non-empty and at least one of wish text or RSVP answer is set.
func (u *GuestbookUseCase) Validate(draft Draft) error {
	if strings.TrimSpace(draft.UserName) == "" {
		return errors.BadRequest("Please enter your name", nil)
	}
	if strings.TrimSpace(draft.Comment) == "" && draft.RsvpStatus == "" {
		return errors.BadRequest("Enter a wish or an RSVP answer", nil)
	}
	if draft.RsvpStatus != "" && !entity.RSVPStatus(draft.RsvpStatus).Valid() {
		return errors.BadRequest("Unknown RSVP answer", nil)
	}
	return nil
}

// Submit validates the draft and then issues the applicable writes: a wish
// when the comment is non-empty, an RSVP when an answer was picked. A
// validation failure returns an error before any write; write failures are
// reported per-write in the outcome and are never retried here.
func (u *GuestbookUseCase) Submit(ctx context.Context, draft Draft) (SubmitOutcome, error) {
	if err := u.Validate(draft); err != nil {
		return SubmitOutcome{}, err
	}

	name := strings.TrimSpace(draft.UserName)
	comment := strings.TrimSpace(draft.Comment)

	var out SubmitOutcome

	if comment != "" {
		if err := u.wishRepo.Append(ctx, name, comment); err != nil {
			logger.Error("Failed to append wish for %s: %v", name, err)
			out.WishErr = err
		} else {
			out.WishSubmitted = true
		}
	}

	if draft.RsvpStatus != "" {
		if err := u.rsvpRepo.Append(ctx, name, entity.RSVPStatus(draft.RsvpStatus)); err != nil {
			logger.Error("Failed to append RSVP for %s: %v", name, err)
			out.RsvpErr = err
		} else {
			out.RsvpSubmitted = true
		}
	}

	return out, nil
}
