package handler

import (
	"wedding-invite/internal/usecase"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/response"
	"wedding-invite/pkg/utils"

	"github.com/labstack/echo/v4"
)

type HostHandler struct {
	hostUseCase       *usecase.HostUseCase
	invitationUseCase *usecase.InvitationUseCase
}

func NewHostHandler(hostUseCase *usecase.HostUseCase, invitationUseCase *usecase.InvitationUseCase) *HostHandler {
	return &HostHandler{
		hostUseCase:       hostUseCase,
		invitationUseCase: invitationUseCase,
	}
}

func (h *HostHandler) ListRsvps(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	rsvps, total, err := h.hostUseCase.ListRsvps(
		c.Request().Context(),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, rsvps, total, pagination.Page, pagination.PageSize)
}

func (h *HostHandler) GetRsvpSummary(c echo.Context) error {
	summary, err := h.hostUseCase.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

func (h *HostHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		return response.Error(c, errors.BadRequest("A media file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	url, err := h.invitationUseCase.UploadMedia(
		c.Request().Context(),
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to store media", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
