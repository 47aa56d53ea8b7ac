package handler

import (
	"wedding-invite/internal/usecase"
	"wedding-invite/pkg/response"
	"wedding-invite/pkg/utils"

	"github.com/labstack/echo/v4"
)

type InvitationHandler struct {
	invitationUseCase *usecase.InvitationUseCase
}

func NewInvitationHandler(invitationUseCase *usecase.InvitationUseCase) *InvitationHandler {
	return &InvitationHandler{
		invitationUseCase: invitationUseCase,
	}
}

func (h *InvitationHandler) GetInvitation(c echo.Context) error {
	return response.Success(c, h.invitationUseCase.Invitation())
}

func (h *InvitationHandler) GetGallery(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.invitationUseCase.Gallery(
		c.Request().Context(),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}
