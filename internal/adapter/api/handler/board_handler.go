package handler

import (
	"wedding-invite/internal/usecase"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/response"

	"github.com/labstack/echo/v4"
)

type BoardHandler struct {
	guestbookUseCase *usecase.GuestbookUseCase
}

func NewBoardHandler(guestbookUseCase *usecase.GuestbookUseCase) *BoardHandler {
	return &BoardHandler{
		guestbookUseCase: guestbookUseCase,
	}
}

type SubmitRequest struct {
	UserName   string `json:"user_name" validate:"required"`
	Comment    string `json:"comment"`
	RsvpStatus string `json:"rsvp_status" validate:"omitempty,oneof=attending not_attending uncertain"`
}

type SubmitResponse struct {
	WishSubmitted bool   `json:"wish_submitted"`
	RsvpSubmitted bool   `json:"rsvp_submitted"`
	WishError     string `json:"wish_error,omitempty"`
	RsvpError     string `json:"rsvp_error,omitempty"`
}

func (h *BoardHandler) ListWishes(c echo.Context) error {
	wishes, err := h.guestbookUseCase.ListWishes(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, wishes)
}

// Submit handles the combined wish + RSVP form. Both writes are independent:
// a partial success comes back as 200 with each half reported separately.
func (h *BoardHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	out, err := h.guestbookUseCase.Submit(c.Request().Context(), usecase.Draft{
		UserName:   req.UserName,
		Comment:    req.Comment,
		RsvpStatus: req.RsvpStatus,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if out.Failed() && !out.WishSubmitted && !out.RsvpSubmitted {
		return response.Error(c, errors.Internal("Failed to send your submission", nil))
	}

	resp := SubmitResponse{
		WishSubmitted: out.WishSubmitted,
		RsvpSubmitted: out.RsvpSubmitted,
	}
	if out.WishErr != nil {
		resp.WishError = "Failed to send your wish"
	}
	if out.RsvpErr != nil {
		resp.RsvpError = "Failed to send your RSVP"
	}

	if out.Failed() {
		return response.Success(c, resp)
	}
	return response.Created(c, resp)
}
